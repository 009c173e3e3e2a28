// Package cost holds the closed-form physical and probabilistic cost
// formulas of the fog-cloud model. Every function is total: non-positive
// denominators resolve to infinities so that callers can rank infeasible
// placements as arbitrarily bad instead of failing.
package cost

import (
	"math"

	"github.com/Anonymous0-0paper/SIREN/internal/model"
)

// TransferTime is the time to move a payload over one link:
// size*8/bandwidth plus the propagation latency.
func TransferTime(sizeMb, bandwidthMbps, latencyMs float64) float64 {
	if bandwidthMbps <= 0 {
		return math.Inf(1)
	}

	return sizeMb*8/bandwidthMbps + latencyMs/1000
}

func ExecutionTime(workloadMi, cpuMips float64) float64 {
	if cpuMips <= 0 {
		return math.Inf(1)
	}

	return workloadMi / cpuMips
}

// ComputationEnergy is the host's DVFS power draw at the chosen frequency
// over the execution interval.
func ComputationEnergy(host *model.Host, frequencyGhz, executionTimeS float64) float64 {
	return host.ActivePower(frequencyGhz) * executionTimeS
}

// CommunicationEnergy covers both directions of the single modeled transfer,
// hence the factor 2.
func CommunicationEnergy(txPowerW, rxPowerW, transferTimeS float64) float64 {
	return (txPowerW + rxPowerW) * 2 * transferTimeS
}

// SuccessProbability is the exponential-reliability chance that the host
// survives the execution interval. The failure rate is given per hour.
func SuccessProbability(host *model.Host, executionTimeS float64) float64 {
	return math.Exp(-(host.FailureRate / 3600) * executionTimeS)
}

// ReplicatedSuccess combines replica success probabilities: the task
// succeeds if any replica does. No replicas means certain failure.
func ReplicatedSuccess(probs []float64) float64 {
	if len(probs) == 0 {
		return 0
	}

	failure := 1.0
	for _, p := range probs {
		failure *= 1 - p
	}

	return 1 - failure
}

// TaskTotalTime is the end-to-end completion time on one host: input
// transfer from the originating device, execution, output transfer back.
func TaskTotalTime(topo *model.Topology, task *model.Task, host *model.Host) float64 {
	in := TransferTime(
		task.InputSizeMb,
		topo.BandwidthMbps(task.SourceDeviceId, host.Id),
		topo.LatencyMs(task.SourceDeviceId, host.Id),
	)
	exec := ExecutionTime(task.WorkloadMi, host.CpuMips)
	out := TransferTime(
		task.OutputSizeMb,
		topo.BandwidthMbps(host.Id, task.SourceDeviceId),
		topo.LatencyMs(host.Id, task.SourceDeviceId),
	)

	return in + exec + out
}
