package statistics

import (
	"strings"
	"testing"
)

func TestCounters(t *testing.T) {
	Set("replayed_runs", 0)
	Change("replayed_runs", 2)
	Change("replayed_runs", 1)

	if got := Get("replayed_runs"); got != 3 {
		t.Fatalf("got %d, wanted 3", got)
	}

	snapshot := Snapshot()
	snapshot["replayed_runs"] = 100
	if got := Get("replayed_runs"); got != 3 {
		t.Fatalf("mutating a snapshot changed the counter")
	}

	if !strings.Contains(Display(), "replayed_runs is 3") {
		t.Fatalf("display output is missing the counter:\n%s", Display())
	}
}
