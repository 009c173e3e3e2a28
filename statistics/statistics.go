package statistics

import (
	"fmt"
	"sort"
	"sync"
)

type statisticsData struct {
	dataMap map[string]int

	mutex sync.Mutex
}

var stats = &statisticsData{
	dataMap: make(map[string]int),
}

func Set(key string, value int) {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	stats.dataMap[key] = value
}

func Change(key string, value int) {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	stats.dataMap[key] += value
}

func Get(key string) int {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	return stats.dataMap[key]
}

// Snapshot copies the counters, for serialization.
func Snapshot() map[string]int {
	stats.mutex.Lock()
	defer stats.mutex.Unlock()

	out := make(map[string]int, len(stats.dataMap))
	for key, value := range stats.dataMap {
		out[key] = value
	}

	return out
}

func Display() string {
	snapshot := Snapshot()

	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := "Statistics results are:\n"
	for _, key := range keys {
		result += fmt.Sprintf("Number of %s is %d\n", key, snapshot[key])
	}

	return result
}
