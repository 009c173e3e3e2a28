// Package sim replays one schedule after the search: each task runs on its
// first-listed replica and its success is drawn from the replica's survival
// probability. It is a sanity check of a finished run, not part of it.
package sim

import (
	"encoding/json"
	"io/ioutil"
	"math"
	"math/rand"

	"github.com/Anonymous0-0paper/SIREN/internal/cost"
	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/logging"
	"github.com/Anonymous0-0paper/SIREN/statistics"
)

var log = logging.Get()

type Report struct {
	Completed  int     `json:"completed"`
	Failed     int     `json:"failed"`
	TotalTimeS float64 `json:"total_time_s"`
	EnergyJ    float64 `json:"energy_j"`
}

// Run replays the schedule with seeded success draws. Unassigned tasks and
// unresolvable hosts count as failures.
func Run(topo *model.Topology, tasks []*model.Task, schedule *model.Schedule, seed int64) Report {
	log.Info().Int("tasks", len(tasks)).Msg("replaying schedule")

	rng := rand.New(rand.NewSource(seed))
	report := Report{}
	maxTime := 0.0

	for _, task := range tasks {
		assignment, ok := schedule.Assignment(task.Id)
		if !ok || len(assignment.Hosts) == 0 {
			report.Failed++
			continue
		}

		host, ok := topo.Host(assignment.Hosts[0])
		if !ok {
			report.Failed++
			continue
		}

		execTime := cost.ExecutionTime(task.WorkloadMi, host.CpuMips)
		transferIn := cost.TransferTime(
			task.InputSizeMb,
			topo.BandwidthMbps(task.SourceDeviceId, host.Id),
			topo.LatencyMs(task.SourceDeviceId, host.Id),
		)

		taskTime := transferIn + execTime
		if !math.IsInf(taskTime, 1) {
			maxTime = math.Max(maxTime, taskTime)
		}

		report.EnergyJ += cost.ComputationEnergy(host, assignment.FrequencyGhz, execTime)
		report.EnergyJ += cost.CommunicationEnergy(host.TxPowerW, host.RxPowerW, transferIn)

		if rng.Float64() < cost.SuccessProbability(host, execTime) {
			report.Completed++
		} else {
			report.Failed++
		}
	}

	report.TotalTimeS = maxTime

	statistics.Change("completed_tasks", report.Completed)
	statistics.Change("failed_tasks", report.Failed)

	return report
}

func WriteReport(report Report, path string) error {
	content, err := json.MarshalIndent(report, "", " ")
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path, content, 0644)
}
