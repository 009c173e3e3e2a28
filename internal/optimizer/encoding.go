package optimizer

import (
	"math"
	"math/rand"

	"github.com/Anonymous0-0paper/SIREN/internal/config"
	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/internal/utils"
	"gonum.org/v1/gonum/mat"
)

// Encoding maps a continuous position vector onto a discrete schedule. Each
// task owns three consecutive coordinates: host, replication factor and
// clock frequency. Keeping the rounding rules here, behind Decode/Clamp,
// lets alternative encodings replace this one without touching the loop.
type Encoding struct {
	NumTasks int
	NumHosts int

	MinReplicas int
	MaxReplicas int
	FreqMinGhz  float64
	FreqMaxGhz  float64
}

func NewEncoding(numTasks, numHosts int) Encoding {
	return Encoding{
		NumTasks:    numTasks,
		NumHosts:    numHosts,
		MinReplicas: config.MinReplicas,
		MaxReplicas: config.MaxReplicas,
		FreqMinGhz:  config.FreqMinGhz,
		FreqMaxGhz:  config.FreqMaxGhz,
	}
}

func (e Encoding) Dim() int {
	return 3 * e.NumTasks
}

// Random draws a position with every coordinate uniform over its valid range.
func (e Encoding) Random(rng *rand.Rand) *mat.VecDense {
	position := mat.NewVecDense(e.Dim(), nil)
	for j := 0; j < e.NumTasks; j++ {
		position.SetVec(3*j, rng.Float64()*float64(e.NumHosts))
		position.SetVec(3*j+1, float64(e.MinReplicas)+rng.Float64()*float64(e.MaxReplicas-e.MinReplicas))
		position.SetVec(3*j+2, e.FreqMinGhz+rng.Float64()*(e.FreqMaxGhz-e.FreqMinGhz))
	}

	return position
}

// Decode is pure and idempotent: the same position always yields the same
// schedule. Replicas are spread deterministically over consecutive host ids.
func (e Encoding) Decode(position *mat.VecDense) *model.Schedule {
	s := model.NewSchedule(e.NumTasks, e.NumHosts)

	for j := 0; j < e.NumTasks; j++ {
		primary := int(math.Round(position.AtVec(3*j))) % e.NumHosts
		if primary < 0 {
			primary += e.NumHosts
		}

		replication := utils.ClampInt(
			int(math.Round(position.AtVec(3*j+1))),
			e.MinReplicas, e.MaxReplicas,
		)

		frequency := utils.Clamp(position.AtVec(3*j+2), e.FreqMinGhz, e.FreqMaxGhz)

		hosts := make([]int, 0, replication)
		for r := 0; r < replication; r++ {
			hosts = append(hosts, (primary+r)%e.NumHosts)
		}

		s.Assign(j, hosts, frequency)
	}

	return s
}

// Clamp pushes every coordinate back into its valid range after a move.
func (e Encoding) Clamp(position *mat.VecDense) {
	for i := 0; i < position.Len(); i++ {
		switch i % 3 {
		case 0:
			position.SetVec(i, utils.Clamp(position.AtVec(i), 0, float64(e.NumHosts-1)))
		case 1:
			position.SetVec(i, utils.Clamp(position.AtVec(i), float64(e.MinReplicas), float64(e.MaxReplicas)))
		case 2:
			position.SetVec(i, utils.Clamp(position.AtVec(i), e.FreqMinGhz, e.FreqMaxGhz))
		}
	}
}
