package optimizer

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Wolf is one candidate solution: a continuous position plus the best
// position it has ever held (its memory).
type Wolf struct {
	Position *mat.VecDense
	Fitness  float64

	pbest        *mat.VecDense
	pbestFitness float64
}

func NewWolf(position *mat.VecDense) *Wolf {
	return &Wolf{
		Position:     position,
		Fitness:      math.Inf(1),
		pbest:        mat.VecDenseCopyOf(position),
		pbestFitness: math.Inf(1),
	}
}

// UpdatePersonalBest records a strictly better fitness. Ties do not
// overwrite, which preserves the earliest-found optimum.
func (w *Wolf) UpdatePersonalBest(fitness float64) {
	if fitness < w.pbestFitness {
		w.pbestFitness = fitness
		w.pbest.CopyVec(w.Position)
	}
}

func (w *Wolf) PersonalBestFitness() float64 {
	return w.pbestFitness
}

func (w *Wolf) PersonalBest() *mat.VecDense {
	return mat.VecDenseCopyOf(w.pbest)
}
