package game

import (
	"math"
	"reflect"
	"testing"

	"github.com/Anonymous0-0paper/SIREN/internal/config"
	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/internal/model/testing_tool"
)

func smallGame() (*Engine, []*model.Task) {
	builder := testing_tool.New()

	topo := builder.GetTopology(testing_tool.UniformHosts(3, testing_tool.HostDesc{
		Cpu:         2000,
		Memory:      2048,
		FailureRate: 1e-4,
	}))
	tasks := builder.GetTasks(testing_tool.UniformTasks(4, testing_tool.TaskDesc{
		Workload: 1000,
		Input:    10,
		Output:   5,
		Memory:   256,
		Deadline: 10,
	}))

	return NewEngine(topo, tasks, 0.4, 0.6), tasks
}

func TestHostPayoff(t *testing.T) {
	engine, tasks := smallGame()

	s := model.NewSchedule(len(tasks), engine.Topology.NumHosts())
	for _, task := range tasks {
		s.Assign(task.Id, []int{0}, config.DefaultFrequencyGhz)
	}

	t.Run("LoadedHost", func(t *testing.T) {
		payoff := engine.HostPayoff(0, s)
		if payoff == 0 {
			t.Fatalf("a loaded host should earn a payoff")
		}
		if math.IsInf(payoff, 0) || math.IsNaN(payoff) {
			t.Fatalf("payoff should be finite, got %f", payoff)
		}
	})

	t.Run("IdleHost", func(t *testing.T) {
		if payoff := engine.HostPayoff(1, s); payoff != 0 {
			t.Fatalf("an idle host earns nothing, got %f", payoff)
		}
	})

	t.Run("UnknownHost", func(t *testing.T) {
		if payoff := engine.HostPayoff(42, s); payoff != 0 {
			t.Fatalf("an unknown host earns nothing, got %f", payoff)
		}
	})

	t.Run("SystemIsSumOfHosts", func(t *testing.T) {
		want := engine.HostPayoff(0, s) + engine.HostPayoff(1, s) + engine.HostPayoff(2, s)
		if got := engine.SystemPayoff(s); math.Abs(got-want) > 1e-9 {
			t.Fatalf("got %f, wanted %f", got, want)
		}
	})
}

func TestEmptySchedulePayoff(t *testing.T) {
	engine, tasks := smallGame()
	empty := model.NewSchedule(len(tasks), engine.Topology.NumHosts())

	if got := engine.SystemPayoff(empty); got != 0 {
		t.Fatalf("an empty schedule pays nothing, got %f", got)
	}
}

func TestBestResponseConverges(t *testing.T) {
	engine, tasks := smallGame()
	dynamics := NewBestResponse(engine)

	initial := model.NewSchedule(len(tasks), engine.Topology.NumHosts())
	converged := dynamics.FindEquilibrium(initial)

	// Each greedy pass claims the first two tasks within the 2000 MIPS
	// budget; the last fog host keeps them.
	lastFog := engine.Topology.FogHostIds()[engine.Topology.NumFog()-1]
	for _, taskId := range []int{0, 1} {
		assignment, ok := converged.Assignment(taskId)
		if !ok {
			t.Fatalf("task %d should be claimed", taskId)
		}
		if !reflect.DeepEqual(assignment.Hosts, []int{lastFog}) {
			t.Fatalf("task %d: got hosts %v, wanted [%d]", taskId, assignment.Hosts, lastFog)
		}
	}

	t.Run("InitialUntouched", func(t *testing.T) {
		if initial.Assigned(0) {
			t.Fatalf("best response mutated its input schedule")
		}
	})

	t.Run("Stable", func(t *testing.T) {
		again := dynamics.FindEquilibrium(converged)
		if !reflect.DeepEqual(again.Assignments(), converged.Assignments()) {
			t.Fatalf("re-running from the equilibrium changed it")
		}
	})
}
