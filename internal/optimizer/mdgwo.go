// Package optimizer implements the Memory-Driven Grey Wolf Optimizer:
// a population of continuous candidates whose three best members drive the
// social move of everyone else, softened by each candidate's own memory.
package optimizer

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/internal/utils"
	"github.com/Anonymous0-0paper/SIREN/logging"
	"github.com/Anonymous0-0paper/SIREN/statistics"
	"gonum.org/v1/gonum/mat"
)

var log = logging.Get()

type DecayScheme string

const (
	DecayLinear      DecayScheme = "linear"
	DecayExponential DecayScheme = "exponential"
)

// FitnessFunc scores one decoded schedule, lower is better. It must be a
// pure function: the optimizer calls it once per candidate per generation.
type FitnessFunc func(*model.Schedule) float64

type Config struct {
	PopulationSize int
	MaxIterations  int
	MemoryDecay    DecayScheme
	Seed           int64
}

type Result struct {
	BestSchedule *model.Schedule
	BestFitness  float64

	// Best fitness after each generation's evaluation pass, in order.
	Convergence []float64
}

type Optimizer struct {
	cfg      Config
	encoding Encoding
	fitness  FitnessFunc
	strategy UpdateStrategy

	rng    *rand.Rand
	wolves []*Wolf

	alpha *Wolf
	beta  *Wolf
	delta *Wolf

	// Best-ever encoding, tracked outside the live population so it can
	// never regress.
	bestPosition *mat.VecDense
	bestFitness  float64

	convergence []float64
}

// New validates the hyperparameters and draws the initial population.
// Invalid configuration is the only rejected error class: it invalidates the
// whole run, whereas a bad evaluation merely scores badly.
func New(cfg Config, encoding Encoding, fitness FitnessFunc, strategy UpdateStrategy) (*Optimizer, error) {
	if cfg.PopulationSize <= 0 {
		return nil, fmt.Errorf("population size should be positive, got %d", cfg.PopulationSize)
	}
	if cfg.MaxIterations <= 0 {
		return nil, fmt.Errorf("iteration budget should be positive, got %d", cfg.MaxIterations)
	}
	if encoding.NumTasks <= 0 {
		return nil, fmt.Errorf("there is nothing to schedule, got %d tasks", encoding.NumTasks)
	}
	if encoding.NumHosts <= 0 {
		return nil, fmt.Errorf("there is nowhere to schedule, got %d hosts", encoding.NumHosts)
	}
	if fitness == nil {
		return nil, fmt.Errorf("a fitness function is required")
	}

	switch cfg.MemoryDecay {
	case "":
		cfg.MemoryDecay = DecayLinear
	case DecayLinear, DecayExponential:
	default:
		return nil, fmt.Errorf("unknown memory decay scheme %q", cfg.MemoryDecay)
	}

	if strategy == nil {
		strategy = MemoryDriven{}
	}

	o := &Optimizer{
		cfg:         cfg,
		encoding:    encoding,
		fitness:     fitness,
		strategy:    strategy,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		bestFitness: math.Inf(1),
	}

	o.wolves = make([]*Wolf, cfg.PopulationSize)
	for i := range o.wolves {
		o.wolves[i] = NewWolf(encoding.Random(o.rng))
	}
	o.bestPosition = mat.VecDenseCopyOf(o.wolves[0].Position)

	// Leaders are placeholders until the first evaluation pass.
	o.rankLeaders()

	return o, nil
}

// memoryCoefficient is the decaying weight eta(t) of the pull toward each
// wolf's personal best. The raw formula result is used as-is; coordinates
// are clamped afterwards anyway.
func (o *Optimizer) memoryCoefficient(iteration int) float64 {
	switch o.cfg.MemoryDecay {
	case DecayExponential:
		return math.Exp(-2 / float64(o.cfg.MaxIterations) * float64(iteration))
	default:
		return 1 - float64(iteration)/float64(o.cfg.MaxIterations)
	}
}

func (o *Optimizer) evaluate() {
	for _, wolf := range o.wolves {
		wolf.Fitness = o.fitness(o.encoding.Decode(wolf.Position))
		wolf.UpdatePersonalBest(wolf.Fitness)

		if wolf.Fitness < o.bestFitness {
			o.bestFitness = wolf.Fitness
			o.bestPosition = mat.VecDenseCopyOf(wolf.Position)
		}
	}

	statistics.Change("evaluations", len(o.wolves))
}

// rankLeaders re-picks alpha, beta and delta as the three lowest-fitness
// wolves. The sort is stable, so ties break by population order. With fewer
// than three wolves the best one fills the missing slots.
func (o *Optimizer) rankLeaders() {
	ranked := make([]*Wolf, len(o.wolves))
	copy(ranked, o.wolves)
	sort.Stable(utils.NewSorter(ranked, func(w *Wolf) float64 { return w.Fitness }))

	o.alpha = ranked[0]
	o.beta = ranked[min(1, len(ranked)-1)]
	o.delta = ranked[min(2, len(ranked)-1)]
}

func (o *Optimizer) isLeader(w *Wolf) bool {
	return w == o.alpha || w == o.beta || w == o.delta
}

// Run executes the fixed iteration budget: Evaluate, RankLeaders, Update.
// One generation fully evaluates before ranking, which fully completes
// before any wolf moves.
func (o *Optimizer) Run() *Result {
	log.Info().
		Str("strategy", o.strategy.Name()).
		Int("population", o.cfg.PopulationSize).
		Int("iterations", o.cfg.MaxIterations).
		Int("tasks", o.encoding.NumTasks).
		Int("hosts", o.encoding.NumHosts).
		Msg("starting optimization")

	o.convergence = make([]float64, 0, o.cfg.MaxIterations)

	for t := 0; t < o.cfg.MaxIterations; t++ {
		o.evaluate()
		o.rankLeaders()
		o.convergence = append(o.convergence, o.alpha.Fitness)

		if t%20 == 0 {
			log.Debug().
				Int("iteration", t).
				Float64("best_fitness", o.alpha.Fitness).
				Msg("generation done")
		}

		leaders := Leaders{
			Alpha: mat.VecDenseCopyOf(o.alpha.Position),
			Beta:  mat.VecDenseCopyOf(o.beta.Position),
			Delta: mat.VecDenseCopyOf(o.delta.Position),
		}
		eta := o.memoryCoefficient(t)

		// Leaders persist unchanged until the next ranking demotes them.
		for _, wolf := range o.wolves {
			if o.isLeader(wolf) {
				continue
			}
			o.strategy.Move(wolf, leaders, eta)
			o.encoding.Clamp(wolf.Position)
		}
	}

	log.Info().Float64("best_fitness", o.bestFitness).Msg("optimization completed")

	return &Result{
		BestSchedule: o.encoding.Decode(o.bestPosition),
		BestFitness:  o.bestFitness,
		Convergence:  o.convergence,
	}
}

// BestFitness is the best-ever fitness seen so far; it never regresses even
// when the live population fluctuates.
func (o *Optimizer) BestFitness() float64 {
	return o.bestFitness
}

func (o *Optimizer) Leaders() (*Wolf, *Wolf, *Wolf) {
	return o.alpha, o.beta, o.delta
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
