// Package game models fog hosts as strategic players: each host earns a
// payoff of weighted task success minus weighted energy spend. It is an
// independent heuristic consuming the same topology, task and schedule
// shapes as the optimizer, not part of the search itself.
package game

import (
	"math"

	"github.com/Anonymous0-0paper/SIREN/internal/config"
	"github.com/Anonymous0-0paper/SIREN/internal/cost"
	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/logging"
)

var log = logging.Get()

type Engine struct {
	Topology *model.Topology
	Tasks    []*model.Task

	OmegaReliability float64
	OmegaEnergy      float64
}

func NewEngine(topo *model.Topology, tasks []*model.Task, omegaReliability, omegaEnergy float64) *Engine {
	return &Engine{
		Topology:         topo,
		Tasks:            tasks,
		OmegaReliability: omegaReliability,
		OmegaEnergy:      omegaEnergy,
	}
}

// HostPayoff scores one host against a schedule: the weighted sum of success
// probabilities of the tasks replicated onto it minus its weighted energy
// spend. Unknown hosts earn nothing.
func (e *Engine) HostPayoff(hostId int, s *model.Schedule) float64 {
	host, ok := e.Topology.Host(hostId)
	if !ok {
		return 0
	}

	reliability := 0.0
	energy := 0.0

	for _, task := range e.Tasks {
		assignment, ok := s.Assignment(task.Id)
		if !ok || !assignedTo(assignment, hostId) {
			continue
		}

		execTime := cost.ExecutionTime(task.WorkloadMi, host.CpuMips)
		reliability += cost.SuccessProbability(host, execTime)

		compEnergy := cost.ComputationEnergy(host, assignment.FrequencyGhz, execTime)
		transferIn := cost.TransferTime(
			task.InputSizeMb,
			e.Topology.BandwidthMbps(task.SourceDeviceId, hostId),
			e.Topology.LatencyMs(task.SourceDeviceId, hostId),
		)
		commEnergy := cost.CommunicationEnergy(host.TxPowerW, host.RxPowerW, transferIn)

		energy += compEnergy + commEnergy
	}

	return e.OmegaReliability*reliability - e.OmegaEnergy*energy
}

// SystemPayoff sums the payoffs of all fog hosts.
func (e *Engine) SystemPayoff(s *model.Schedule) float64 {
	total := 0.0
	for _, hostId := range e.Topology.FogHostIds() {
		total += e.HostPayoff(hostId, s)
	}

	return total
}

func assignedTo(assignment model.Assignment, hostId int) bool {
	for _, id := range assignment.Hosts {
		if id == hostId {
			return true
		}
	}

	return false
}

// BestResponse greedily reassigns tasks host by host until the system payoff
// settles within Tolerance across a round, or the round budget runs out.
type BestResponse struct {
	Engine    *Engine
	MaxRounds int
	Tolerance float64
}

func NewBestResponse(engine *Engine) *BestResponse {
	return &BestResponse{
		Engine:    engine,
		MaxRounds: 10,
		Tolerance: 1e-3,
	}
}

func (b *BestResponse) FindEquilibrium(initial *model.Schedule) *model.Schedule {
	current := initial.Clone()

	for round := 0; round < b.MaxRounds; round++ {
		prevPayoff := b.Engine.SystemPayoff(current)

		for _, hostId := range b.Engine.Topology.FogHostIds() {
			b.applyBestResponse(hostId, current)
		}

		newPayoff := b.Engine.SystemPayoff(current)
		if math.Abs(newPayoff-prevPayoff) < b.Tolerance {
			log.Debug().Int("round", round).Float64("payoff", newPayoff).Msg("best response converged")
			break
		}
	}

	return current
}

// applyBestResponse greedily claims tasks for the host up to its CPU budget.
func (b *BestResponse) applyBestResponse(hostId int, s *model.Schedule) {
	host, ok := b.Engine.Topology.Host(hostId)
	if !ok {
		return
	}

	budget := host.CpuMips
	for _, task := range b.Engine.Tasks {
		if budget < task.WorkloadMi {
			continue
		}
		s.Assign(task.Id, []int{hostId}, config.DefaultFrequencyGhz)
		budget -= task.WorkloadMi
	}
}
