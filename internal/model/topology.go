package model

import (
	"fmt"
	"sort"
)

// Fallbacks for host pairs absent from both directions of the network maps.
const (
	DefaultLatencyMs     = 50.0
	DefaultBandwidthMbps = 100.0
)

type Link struct {
	From int
	To   int
}

// Topology is the static registry of hosts plus the pairwise network lookup.
// It is read-only for the duration of a run.
type Topology struct {
	fogHosts   map[int]*Host
	cloudHosts map[int]*Host

	latencyMs     map[Link]float64
	bandwidthMbps map[Link]float64
}

// NewTopology merges the fog and cloud id spaces into one registry. The two
// spaces must stay disjoint, anything else invalidates the whole run.
func NewTopology(fog, cloud []*Host, latencyMs, bandwidthMbps map[Link]float64) (*Topology, error) {
	t := &Topology{
		fogHosts:      make(map[int]*Host),
		cloudHosts:    make(map[int]*Host),
		latencyMs:     latencyMs,
		bandwidthMbps: bandwidthMbps,
	}
	if t.latencyMs == nil {
		t.latencyMs = make(map[Link]float64)
	}
	if t.bandwidthMbps == nil {
		t.bandwidthMbps = make(map[Link]float64)
	}

	for _, host := range fog {
		if _, ok := t.fogHosts[host.Id]; ok {
			return nil, fmt.Errorf("duplicate fog host id %d", host.Id)
		}
		t.fogHosts[host.Id] = host
	}
	for _, host := range cloud {
		if _, ok := t.fogHosts[host.Id]; ok {
			return nil, fmt.Errorf("host id %d is used by both a fog and a cloud host", host.Id)
		}
		if _, ok := t.cloudHosts[host.Id]; ok {
			return nil, fmt.Errorf("duplicate cloud host id %d", host.Id)
		}
		t.cloudHosts[host.Id] = host
	}

	return t, nil
}

func (t *Topology) Host(id int) (*Host, bool) {
	if host, ok := t.fogHosts[id]; ok {
		return host, true
	}
	host, ok := t.cloudHosts[id]
	return host, ok
}

func (t *Topology) IsFog(id int) bool {
	_, ok := t.fogHosts[id]
	return ok
}

func (t *Topology) IsCloud(id int) bool {
	_, ok := t.cloudHosts[id]
	return ok
}

func (t *Topology) NumFog() int {
	return len(t.fogHosts)
}

func (t *Topology) NumCloud() int {
	return len(t.cloudHosts)
}

func (t *Topology) NumHosts() int {
	return len(t.fogHosts) + len(t.cloudHosts)
}

func (t *Topology) HostIds() []int {
	ids := make([]int, 0, t.NumHosts())
	for id := range t.fogHosts {
		ids = append(ids, id)
	}
	for id := range t.cloudHosts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

func (t *Topology) FogHostIds() []int {
	ids := make([]int, 0, len(t.fogHosts))
	for id := range t.fogHosts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// LatencyMs resolves the latency between two entities, falling back to the
// reverse direction and finally to the network-wide default.
func (t *Topology) LatencyMs(src, dst int) float64 {
	if latency, ok := t.latencyMs[Link{src, dst}]; ok {
		return latency
	}
	if latency, ok := t.latencyMs[Link{dst, src}]; ok {
		return latency
	}

	return DefaultLatencyMs
}

// BandwidthMbps resolves the bandwidth between two entities with the same
// fallback rules as LatencyMs.
func (t *Topology) BandwidthMbps(src, dst int) float64 {
	if bandwidth, ok := t.bandwidthMbps[Link{src, dst}]; ok {
		return bandwidth
	}
	if bandwidth, ok := t.bandwidthMbps[Link{dst, src}]; ok {
		return bandwidth
	}

	return DefaultBandwidthMbps
}
