package sim

import (
	"testing"

	"github.com/Anonymous0-0paper/SIREN/internal/config"
	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/internal/model/testing_tool"
)

func replaySystem() (*model.Topology, []*model.Task, *model.Schedule) {
	builder := testing_tool.New()

	topo := builder.GetTopology(testing_tool.UniformHosts(5, testing_tool.HostDesc{
		Cpu:         2000,
		Memory:      2048,
		FailureRate: 1e-4,
	}))
	tasks := builder.GetTasks(testing_tool.UniformTasks(10, testing_tool.TaskDesc{
		Workload: 1000,
		Input:    10,
		Output:   5,
		Memory:   256,
		Deadline: 10,
	}))

	schedule := model.NewSchedule(len(tasks), topo.NumHosts())
	for _, task := range tasks {
		schedule.Assign(task.Id, []int{task.Id % topo.NumFog()}, config.DefaultFrequencyGhz)
	}

	return topo, tasks, schedule
}

func TestRunAccountsForEveryTask(t *testing.T) {
	topo, tasks, schedule := replaySystem()

	report := Run(topo, tasks, schedule, 42)

	if report.Completed+report.Failed != len(tasks) {
		t.Fatalf("%d completed + %d failed does not cover %d tasks",
			report.Completed, report.Failed, len(tasks))
	}
	if report.EnergyJ <= 0 {
		t.Fatalf("replay energy should be positive, got %f", report.EnergyJ)
	}
	if report.TotalTimeS <= 0 {
		t.Fatalf("replay time should be positive, got %f", report.TotalTimeS)
	}
}

func TestRunIsSeeded(t *testing.T) {
	topo, tasks, schedule := replaySystem()

	first := Run(topo, tasks, schedule, 7)
	second := Run(topo, tasks, schedule, 7)

	if first != second {
		t.Fatalf("identical seeds gave different reports: %+v vs %+v", first, second)
	}
}

func TestUnassignedTasksFail(t *testing.T) {
	topo, tasks, _ := replaySystem()
	empty := model.NewSchedule(len(tasks), topo.NumHosts())

	report := Run(topo, tasks, empty, 42)

	if report.Failed != len(tasks) || report.Completed != 0 {
		t.Fatalf("every unassigned task should fail, got %+v", report)
	}
	if report.EnergyJ != 0 {
		t.Fatalf("an empty schedule burns nothing, got %f", report.EnergyJ)
	}
}
