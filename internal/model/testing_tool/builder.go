// Because it is a testing package, no errors are returned,
// all problems cause a panic.

package testing_tool

import (
	"github.com/Anonymous0-0paper/SIREN/internal/model"
)

const (
	hostBandwidthMbps = 100
	hostIdlePowerW    = 10

	cloudCpuMips       = 100000
	cloudMemoryMb      = 131072
	cloudBandwidthMbps = 10000

	linkLatencyMs     = 10
	linkBandwidthMbps = 100
)

type HostDesc struct {
	Cpu         float64
	Memory      float64
	FailureRate float64
}

type TaskDesc struct {
	Workload float64
	Input    float64
	Output   float64
	Memory   float64
	Deadline float64
	Critical bool
}

type Builder struct {
	lastHostId int
	lastTaskId int
}

func New() *Builder {
	return &Builder{}
}

// UniformHosts repeats one host description n times.
func UniformHosts(n int, desc HostDesc) []*HostDesc {
	descs := make([]*HostDesc, n)
	for i := range descs {
		d := desc
		descs[i] = &d
	}

	return descs
}

// UniformTasks repeats one task description n times.
func UniformTasks(n int, desc TaskDesc) []*TaskDesc {
	descs := make([]*TaskDesc, n)
	for i := range descs {
		d := desc
		descs[i] = &d
	}

	return descs
}

// GetTopology builds the described fog hosts plus one cloud datacenter with
// contiguous ids, and wires every fog pair with fixed latency and bandwidth.
func (builder *Builder) GetTopology(fogDescs []*HostDesc) *model.Topology {
	fog := make([]*model.Host, 0, len(fogDescs))
	for _, desc := range fogDescs {
		fog = append(fog, model.NewFogHost(
			builder.lastHostId,
			desc.Cpu,
			desc.Memory,
			hostBandwidthMbps,
			hostBandwidthMbps,
			desc.FailureRate,
			hostIdlePowerW,
		))
		builder.lastHostId += 1
	}

	cloud := []*model.Host{
		model.NewCloudHost(builder.lastHostId, cloudCpuMips, cloudMemoryMb, cloudBandwidthMbps, cloudBandwidthMbps),
	}
	builder.lastHostId += 1

	latency := make(map[model.Link]float64)
	bandwidth := make(map[model.Link]float64)
	for i := 0; i < len(fogDescs); i++ {
		for j := 0; j < len(fogDescs); j++ {
			if i == j {
				continue
			}
			latency[model.Link{From: i, To: j}] = linkLatencyMs
			bandwidth[model.Link{From: i, To: j}] = linkBandwidthMbps
		}
	}

	topo, err := model.NewTopology(fog, cloud, latency, bandwidth)
	if err != nil {
		panic(err)
	}

	return topo
}

// GetTasks builds tasks with sequential ids, all originating from device 0.
func (builder *Builder) GetTasks(descs []*TaskDesc) []*model.Task {
	tasks := make([]*model.Task, 0, len(descs))
	for _, desc := range descs {
		tasks = append(tasks, &model.Task{
			Id:                  builder.lastTaskId,
			WorkloadMi:          desc.Workload,
			InputSizeMb:         desc.Input,
			OutputSizeMb:        desc.Output,
			MemoryRequirementMb: desc.Memory,
			DeadlineS:           desc.Deadline,
			Critical:            desc.Critical,
			SourceDeviceId:      0,
		})
		builder.lastTaskId += 1
	}

	return tasks
}
