// Package scenario builds seeded synthetic fog-cloud workloads for
// experiments. The same seed always produces the same topology and tasks.
package scenario

import (
	"fmt"
	"math/rand"

	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/logging"
)

var log = logging.Get()

type Kind string

const (
	Healthcare Kind = "healthcare"
	Alibaba    Kind = "alibaba"
	Google     Kind = "google"
)

// Healthcare workloads carry a much higher share of critical tasks.
func criticalityRatio(kind Kind) float64 {
	if kind == Healthcare {
		return 0.4
	}

	return 0.2
}

type Params struct {
	Kind     Kind
	FogNodes int
	Tasks    int
	Seed     int64
}

// Build draws a topology of FogNodes fog hosts plus one cloud datacenter,
// and Tasks tasks originating from device 0. Host ids are contiguous from 0
// so that every decoded host coordinate resolves; the cloud takes the last
// id.
func Build(p Params) (*model.Topology, []*model.Task, error) {
	if p.FogNodes <= 0 {
		return nil, nil, fmt.Errorf("scenario needs at least one fog node, got %d", p.FogNodes)
	}
	if p.Tasks <= 0 {
		return nil, nil, fmt.Errorf("scenario needs at least one task, got %d", p.Tasks)
	}
	switch p.Kind {
	case Healthcare, Alibaba, Google:
	default:
		return nil, nil, fmt.Errorf("unknown scenario kind %q", p.Kind)
	}

	rng := rand.New(rand.NewSource(p.Seed))

	fog := make([]*model.Host, 0, p.FogNodes)
	for i := 0; i < p.FogNodes; i++ {
		fog = append(fog, model.NewFogHost(
			i,
			uniform(rng, 1000, 10000),  // cpu, MIPS
			uniform(rng, 1024, 8192),   // memory, MB
			uniform(rng, 100, 1000),    // inbound bandwidth, Mbps
			uniform(rng, 100, 1000),    // outbound bandwidth, Mbps
			uniform(rng, 1e-5, 1e-3),   // failures per hour
			uniform(rng, 5, 20),        // idle power, W
		))
	}

	cloud := []*model.Host{
		model.NewCloudHost(p.FogNodes, 100000, 131072, 10000, 10000),
	}

	latency := make(map[model.Link]float64)
	bandwidth := make(map[model.Link]float64)
	for i := 0; i < p.FogNodes; i++ {
		for j := 0; j < p.FogNodes; j++ {
			if i == j {
				continue
			}
			latency[model.Link{From: i, To: j}] = uniform(rng, 5, 30)
			bandwidth[model.Link{From: i, To: j}] = uniform(rng, 100, 500)
		}
	}

	topo, err := model.NewTopology(fog, cloud, latency, bandwidth)
	if err != nil {
		return nil, nil, err
	}

	numCritical := int(criticalityRatio(p.Kind) * float64(p.Tasks))
	tasks := make([]*model.Task, 0, p.Tasks)
	for j := 0; j < p.Tasks; j++ {
		tasks = append(tasks, &model.Task{
			Id:                  j,
			WorkloadMi:          uniform(rng, 500, 2000),
			InputSizeMb:         uniform(rng, 10, 50),
			OutputSizeMb:        uniform(rng, 1, 20),
			MemoryRequirementMb: uniform(rng, 100, 500),
			DeadlineS:           uniform(rng, 5, 30),
			Critical:            j < numCritical,
			SourceDeviceId:      0,
		})
	}

	log.Info().
		Str("scenario", string(p.Kind)).
		Int("fog_nodes", p.FogNodes).
		Int("tasks", p.Tasks).
		Int("critical_tasks", numCritical).
		Msg("scenario built")

	return topo, tasks, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
