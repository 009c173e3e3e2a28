package optimizer

import (
	"github.com/Anonymous0-0paper/SIREN/internal/utils"
	"gonum.org/v1/gonum/mat"
)

// Leaders is an immutable snapshot of the three best positions, taken before
// the update phase so that moves never read a live leader.
type Leaders struct {
	Alpha *mat.VecDense
	Beta  *mat.VecDense
	Delta *mat.VecDense
}

// UpdateStrategy moves one non-leader wolf for one generation. eta is the
// memory coefficient of that generation; strategies without memory ignore it.
// Baseline heuristics plug in here without touching the optimizer loop.
type UpdateStrategy interface {
	Name() string
	Move(w *Wolf, leaders Leaders, eta float64)
}

// MemoryDriven is the MD-GWO move:
//
//	x <- (alpha + beta + delta)/3 + eta*(pbest - x)
type MemoryDriven struct{}

func (MemoryDriven) Name() string {
	return "md-gwo"
}

func (MemoryDriven) Move(w *Wolf, leaders Leaders, eta float64) {
	social := utils.MeanVec(leaders.Alpha, leaders.Beta, leaders.Delta)

	memory := mat.NewVecDense(w.Position.Len(), nil)
	memory.SubVec(w.pbest, w.Position)
	memory.ScaleVec(eta, memory)

	w.Position.AddVec(social, memory)
}

// Social is the vanilla GWO baseline: the pure social move with no memory
// pull.
type Social struct{}

func (Social) Name() string {
	return "gwo"
}

func (Social) Move(w *Wolf, leaders Leaders, _ float64) {
	w.Position.CopyVec(utils.MeanVec(leaders.Alpha, leaders.Beta, leaders.Delta))
}
