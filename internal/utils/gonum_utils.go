package utils

import "gonum.org/v1/gonum/mat"

// MeanVec averages the given vectors coordinate-wise.
func MeanVec(vs ...*mat.VecDense) *mat.VecDense {
	if len(vs) == 0 {
		panic("cannot average zero vectors")
	}

	ret := mat.NewVecDense(vs[0].Len(), nil)
	for _, v := range vs {
		if v.Len() != ret.Len() {
			panic("all vectors should have the same length")
		}
		ret.AddVec(ret, v)
	}
	ret.ScaleVec(1/float64(len(vs)), ret)

	return ret
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
