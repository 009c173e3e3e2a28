package optimizer

import (
	"math/rand"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestDecodeMapping(t *testing.T) {
	encoding := NewEncoding(3, 5)

	position := mat.NewVecDense(9, []float64{
		6.4, 2.6, 3.0, // host 6 wraps to 1, 3 replicas, frequency clamps down
		4.6, 0.2, 0.1, // host 5 wraps to 0, replication clamps up, frequency clamps up
		2.0, 1.4, 1.0, // plain values
	})

	s := encoding.Decode(position)

	for i, want := range []struct {
		hosts []int
		freq  float64
	}{
		{[]int{1, 2, 3}, 2.0},
		{[]int{0}, 0.4},
		{[]int{2}, 1.0},
	} {
		assignment, ok := s.Assignment(i)
		if !ok {
			t.Fatalf("task %d is unassigned", i)
		}
		if !reflect.DeepEqual(assignment.Hosts, want.hosts) {
			t.Fatalf("task %d: got hosts %v, wanted %v", i, assignment.Hosts, want.hosts)
		}
		if assignment.FrequencyGhz != want.freq {
			t.Fatalf("task %d: got frequency %f, wanted %f", i, assignment.FrequencyGhz, want.freq)
		}
	}
}

func TestDecodeReplicaWrapAround(t *testing.T) {
	encoding := NewEncoding(1, 3)

	// Primary host 2, three replicas: the spread wraps past the last host.
	position := mat.NewVecDense(3, []float64{2.0, 3.0, 1.0})

	assignment, _ := encoding.Decode(position).Assignment(0)
	if !reflect.DeepEqual(assignment.Hosts, []int{2, 0, 1}) {
		t.Fatalf("got %v, wanted [2 0 1]", assignment.Hosts)
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	encoding := NewEncoding(20, 7)
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 10; trial++ {
		position := encoding.Random(rng)

		first := encoding.Decode(position).Assignments()
		second := encoding.Decode(position).Assignments()

		if !reflect.DeepEqual(first, second) {
			t.Fatalf("decoding the same position twice gave different schedules")
		}
	}
}

func TestRandomStaysInBounds(t *testing.T) {
	encoding := NewEncoding(50, 9)
	rng := rand.New(rand.NewSource(2))

	position := encoding.Random(rng)
	for j := 0; j < encoding.NumTasks; j++ {
		host := position.AtVec(3 * j)
		if host < 0 || host >= float64(encoding.NumHosts) {
			t.Fatalf("host coordinate %f is out of range", host)
		}

		replication := position.AtVec(3*j + 1)
		if replication < float64(encoding.MinReplicas) || replication > float64(encoding.MaxReplicas) {
			t.Fatalf("replication coordinate %f is out of range", replication)
		}

		frequency := position.AtVec(3*j + 2)
		if frequency < encoding.FreqMinGhz || frequency > encoding.FreqMaxGhz {
			t.Fatalf("frequency coordinate %f is out of range", frequency)
		}
	}
}

func TestClampRestoresBounds(t *testing.T) {
	encoding := NewEncoding(1, 5)

	position := mat.NewVecDense(3, []float64{7.3, 0.2, 0.1})
	encoding.Clamp(position)

	if position.AtVec(0) != 4 {
		t.Fatalf("host coordinate should clamp to numHosts-1, got %f", position.AtVec(0))
	}
	if position.AtVec(1) != 1 {
		t.Fatalf("replication coordinate should clamp to 1, got %f", position.AtVec(1))
	}
	if position.AtVec(2) != 0.4 {
		t.Fatalf("frequency coordinate should clamp to 0.4, got %f", position.AtVec(2))
	}

	position = mat.NewVecDense(3, []float64{-2, 5, 9})
	encoding.Clamp(position)

	if position.AtVec(0) != 0 || position.AtVec(1) != 3 || position.AtVec(2) != 2.0 {
		t.Fatalf("upper/lower clamps failed: %v", mat.Formatted(position.T()))
	}
}
