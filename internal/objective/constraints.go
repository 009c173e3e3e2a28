package objective

import (
	"github.com/Anonymous0-0paper/SIREN/internal/cost"
	"github.com/Anonymous0-0paper/SIREN/internal/model"
)

type ConstraintReport struct {
	Cpu      bool
	Memory   bool
	Deadline bool
	All      bool
}

// CheckCpuCapacity reports whether every host can absorb its assigned
// workload, along with the per-host utilization ratios.
func (e *Evaluator) CheckCpuCapacity(s *model.Schedule) (bool, map[int]float64) {
	return e.checkCapacity(s,
		func(task *model.Task) float64 { return task.WorkloadMi },
		func(host *model.Host) float64 { return host.CpuMips },
	)
}

func (e *Evaluator) CheckMemoryCapacity(s *model.Schedule) (bool, map[int]float64) {
	return e.checkCapacity(s,
		func(task *model.Task) float64 { return task.MemoryRequirementMb },
		func(host *model.Host) float64 { return host.MemoryMb },
	)
}

func (e *Evaluator) checkCapacity(
	s *model.Schedule,
	demand func(*model.Task) float64,
	capacity func(*model.Host) float64,
) (bool, map[int]float64) {
	load := make(map[int]float64)
	for _, task := range e.Tasks {
		assignment, ok := s.Assignment(task.Id)
		if !ok {
			continue
		}
		for _, hostId := range assignment.Hosts {
			if _, ok := e.Topology.Host(hostId); !ok {
				continue
			}
			load[hostId] += demand(task)
		}
	}

	feasible := true
	utilization := make(map[int]float64, len(load))
	for hostId, loaded := range load {
		host, _ := e.Topology.Host(hostId)
		ratio := loaded / capacity(host)
		if ratio > 1 {
			feasible = false
		}
		utilization[hostId] = ratio
	}

	return feasible, utilization
}

// CheckDeadlines reports whether every task finishes in time, along with
// each task's completion-to-deadline ratio. Unassigned tasks are infeasible
// and reported with a zero ratio.
func (e *Evaluator) CheckDeadlines(s *model.Schedule) (bool, map[int]float64) {
	feasible := true
	ratios := make(map[int]float64, len(e.Tasks))

	for _, task := range e.Tasks {
		assignment, ok := s.Assignment(task.Id)
		if !ok || len(assignment.Hosts) == 0 {
			ratios[task.Id] = 0
			feasible = false
			continue
		}

		host, ok := e.Topology.Host(assignment.Hosts[0])
		if !ok {
			ratios[task.Id] = 0
			feasible = false
			continue
		}

		totalTime := cost.TaskTotalTime(e.Topology, task, host)
		if totalTime > task.DeadlineS {
			feasible = false
		}
		ratios[task.Id] = totalTime / task.DeadlineS
	}

	return feasible, ratios
}

func (e *Evaluator) CheckAll(s *model.Schedule) ConstraintReport {
	cpuOk, _ := e.CheckCpuCapacity(s)
	memOk, _ := e.CheckMemoryCapacity(s)
	deadlineOk, _ := e.CheckDeadlines(s)

	return ConstraintReport{
		Cpu:      cpuOk,
		Memory:   memOk,
		Deadline: deadlineOk,
		All:      cpuOk && memOk && deadlineOk,
	}
}
