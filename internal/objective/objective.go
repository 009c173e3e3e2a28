// Package objective scores one schedule against the multi-objective fitness:
// weighted energy minus weighted reliability plus constraint penalties.
package objective

import (
	"math"

	"github.com/Anonymous0-0paper/SIREN/internal/config"
	"github.com/Anonymous0-0paper/SIREN/internal/cost"
	"github.com/Anonymous0-0paper/SIREN/internal/model"
)

// Reliability lives in [0,1] while energy is in Joules; this factor puts the
// two terms on comparable scales. Changing it breaks comparability with
// previously published fitness values.
const reliabilityScale = 1000.0

type PenaltyCoefficients struct {
	Cpu         float64
	Memory      float64
	Deadline    float64
	Reliability float64
}

func DefaultPenaltyCoefficients() PenaltyCoefficients {
	return PenaltyCoefficients{
		Cpu:         1e4,
		Memory:      1e4,
		Deadline:    1e5,
		Reliability: 1e5,
	}
}

type Evaluation struct {
	Energy      float64
	Reliability float64
	Penalty     float64
	Fitness     float64
}

// Evaluator is a pure function of (topology, tasks, schedule) plus the
// configured weights. It never fails: missing hosts contribute nothing and
// unassigned tasks are penalized instead of raised.
type Evaluator struct {
	Topology *model.Topology
	Tasks    []*model.Task

	BetaEnergy      float64
	BetaReliability float64
	Penalties       PenaltyCoefficients
	MinReliability  float64
}

func NewEvaluator(topo *model.Topology, tasks []*model.Task, betaEnergy, betaReliability float64) *Evaluator {
	return &Evaluator{
		Topology:        topo,
		Tasks:           tasks,
		BetaEnergy:      betaEnergy,
		BetaReliability: betaReliability,
		Penalties:       DefaultPenaltyCoefficients(),
		MinReliability:  config.DefaultMinReliability,
	}
}

// EnergyConsumption sums computation and communication energy over every
// task and every one of its replicas.
func (e *Evaluator) EnergyConsumption(s *model.Schedule) float64 {
	total := 0.0

	for _, task := range e.Tasks {
		assignment, ok := s.Assignment(task.Id)
		if !ok {
			continue
		}

		for _, hostId := range assignment.Hosts {
			host, ok := e.Topology.Host(hostId)
			if !ok {
				continue
			}

			execTime := cost.ExecutionTime(task.WorkloadMi, host.CpuMips)
			compEnergy := cost.ComputationEnergy(host, assignment.FrequencyGhz, execTime)

			transferIn := cost.TransferTime(
				task.InputSizeMb,
				e.Topology.BandwidthMbps(task.SourceDeviceId, hostId),
				e.Topology.LatencyMs(task.SourceDeviceId, hostId),
			)
			commEnergy := cost.CommunicationEnergy(host.TxPowerW, host.RxPowerW, transferIn)

			total += compEnergy + commEnergy
		}
	}

	return total
}

// SystemReliability is the mean replicated success probability over all
// tasks. An unassigned task counts as certain failure.
func (e *Evaluator) SystemReliability(s *model.Schedule) float64 {
	if len(e.Tasks) == 0 {
		return 0
	}

	total := 0.0
	for _, task := range e.Tasks {
		total += e.taskSuccess(s, task)
	}

	return total / float64(len(e.Tasks))
}

func (e *Evaluator) taskSuccess(s *model.Schedule, task *model.Task) float64 {
	assignment, ok := s.Assignment(task.Id)
	if !ok {
		return 0
	}

	probs := make([]float64, 0, len(assignment.Hosts))
	for _, hostId := range assignment.Hosts {
		host, ok := e.Topology.Host(hostId)
		if !ok {
			probs = append(probs, 0)
			continue
		}

		execTime := cost.ExecutionTime(task.WorkloadMi, host.CpuMips)
		probs = append(probs, cost.SuccessProbability(host, execTime))
	}

	return cost.ReplicatedSuccess(probs)
}

// Penalty sums the four independent constraint terms: CPU overload, memory
// overload, deadline misses and reliability deficits of critical tasks.
// An unassigned task pays the deadline term and, when critical, the
// reliability term too.
func (e *Evaluator) Penalty(s *model.Schedule) float64 {
	penalty := 0.0

	cpuLoad := make(map[int]float64)
	memLoad := make(map[int]float64)
	for _, task := range e.Tasks {
		assignment, ok := s.Assignment(task.Id)
		if !ok {
			continue
		}
		for _, hostId := range assignment.Hosts {
			cpuLoad[hostId] += task.WorkloadMi
			memLoad[hostId] += task.MemoryRequirementMb
		}
	}

	for hostId, load := range cpuLoad {
		host, ok := e.Topology.Host(hostId)
		if !ok {
			continue
		}
		if utilization := load / host.CpuMips; utilization > 1 {
			penalty += e.Penalties.Cpu * (utilization - 1)
		}
	}

	for hostId, load := range memLoad {
		host, ok := e.Topology.Host(hostId)
		if !ok {
			continue
		}
		if utilization := load / host.MemoryMb; utilization > 1 {
			penalty += e.Penalties.Memory * (utilization - 1)
		}
	}

	for _, task := range e.Tasks {
		assignment, ok := s.Assignment(task.Id)
		if !ok {
			penalty += e.Penalties.Deadline
			continue
		}

		// Only the first-listed replica's timing is checked.
		if e.firstReplicaTime(task, assignment) > task.DeadlineS {
			penalty += e.Penalties.Deadline
		}
	}

	for _, task := range e.Tasks {
		if !task.Critical {
			continue
		}

		if !s.Assigned(task.Id) {
			penalty += e.Penalties.Reliability
			continue
		}

		if success := e.taskSuccess(s, task); success < e.MinReliability {
			penalty += e.Penalties.Reliability * (e.MinReliability - success)
		}
	}

	return penalty
}

func (e *Evaluator) firstReplicaTime(task *model.Task, assignment model.Assignment) float64 {
	if len(assignment.Hosts) == 0 {
		return math.Inf(1)
	}

	host, ok := e.Topology.Host(assignment.Hosts[0])
	if !ok {
		return math.Inf(1)
	}

	return cost.TaskTotalTime(e.Topology, task, host)
}

func (e *Evaluator) Fitness(s *model.Schedule) float64 {
	return e.Evaluate(s).Fitness
}

func (e *Evaluator) Evaluate(s *model.Schedule) Evaluation {
	energy := e.EnergyConsumption(s)
	reliability := e.SystemReliability(s)
	penalty := e.Penalty(s)

	return Evaluation{
		Energy:      energy,
		Reliability: reliability,
		Penalty:     penalty,
		Fitness:     e.BetaEnergy*energy - e.BetaReliability*reliability*reliabilityScale + penalty,
	}
}

// IsFeasible reports whether the schedule violates no constraint beyond the
// given tolerance.
func (e *Evaluator) IsFeasible(s *model.Schedule, maxPenalty float64) bool {
	return e.Penalty(s) < maxPenalty
}
