package model

import (
	"testing"
)

func smallHosts() ([]*Host, []*Host) {
	fog := []*Host{
		NewFogHost(0, 2000, 2048, 100, 100, 1e-4, 10),
		NewFogHost(1, 2000, 2048, 100, 100, 1e-4, 10),
	}
	cloud := []*Host{
		NewCloudHost(2, 100000, 131072, 10000, 10000),
	}

	return fog, cloud
}

func TestNewTopologyRejectsOverlappingIds(t *testing.T) {
	fog, _ := smallHosts()

	t.Run("FogAndCloud", func(t *testing.T) {
		cloud := []*Host{NewCloudHost(0, 100000, 131072, 10000, 10000)}
		if _, err := NewTopology(fog, cloud, nil, nil); err == nil {
			t.Fatalf("expected an error for overlapping fog/cloud ids")
		}
	})

	t.Run("DuplicateFog", func(t *testing.T) {
		dup := append(fog, NewFogHost(0, 1000, 1024, 100, 100, 1e-4, 10))
		if _, err := NewTopology(dup, nil, nil, nil); err == nil {
			t.Fatalf("expected an error for duplicate fog ids")
		}
	})
}

func TestTopologyLookups(t *testing.T) {
	fog, cloud := smallHosts()
	topo, err := NewTopology(fog, cloud, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if topo.NumHosts() != 3 || topo.NumFog() != 2 || topo.NumCloud() != 1 {
		t.Fatalf("unexpected host counts")
	}

	if !topo.IsFog(0) || !topo.IsCloud(2) || topo.IsFog(2) {
		t.Fatalf("host kind lookups are wrong")
	}

	if _, ok := topo.Host(7); ok {
		t.Fatalf("host 7 should not resolve")
	}

	ids := topo.HostIds()
	for i, id := range ids {
		if i != id {
			t.Fatalf("host ids should be 0..2 ascending, got %v", ids)
		}
	}
}

func TestNetworkFallbacks(t *testing.T) {
	fog, cloud := smallHosts()
	latency := map[Link]float64{{From: 0, To: 1}: 7}
	bandwidth := map[Link]float64{{From: 0, To: 1}: 250}

	topo, err := NewTopology(fog, cloud, latency, bandwidth)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Direct", func(t *testing.T) {
		if topo.LatencyMs(0, 1) != 7 || topo.BandwidthMbps(0, 1) != 250 {
			t.Fatalf("direct lookup failed")
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		if topo.LatencyMs(1, 0) != 7 || topo.BandwidthMbps(1, 0) != 250 {
			t.Fatalf("reverse direction should fall back to the forward entry")
		}
	})

	t.Run("Default", func(t *testing.T) {
		if topo.LatencyMs(0, 2) != DefaultLatencyMs {
			t.Fatalf("absent pair should resolve to the default latency")
		}
		if topo.BandwidthMbps(0, 2) != DefaultBandwidthMbps {
			t.Fatalf("absent pair should resolve to the default bandwidth")
		}
	})
}

func TestScheduleCloneIsIndependent(t *testing.T) {
	s := NewSchedule(2, 3)
	s.Assign(0, []int{1, 2}, 1.5)

	clone := s.Clone()
	clone.Assign(0, []int{0}, 2.0)
	clone.Assign(1, []int{1}, 2.0)

	original, _ := s.Assignment(0)
	if len(original.Hosts) != 2 || original.FrequencyGhz != 1.5 {
		t.Fatalf("mutating a clone changed the original")
	}
	if s.Assigned(1) {
		t.Fatalf("assignment to a clone leaked into the original")
	}
}
