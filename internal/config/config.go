package config

type GeneralConfig struct {
	Name     string `yaml:"name"`
	Scenario string `yaml:"scenario"`
	FogNodes int    `yaml:"fog_nodes"`
	Tasks    int    `yaml:"tasks"`
	Seed     int64  `yaml:"seed"`

	PopulationSize int    `yaml:"population_size"`
	MaxIterations  int    `yaml:"max_iterations"`
	MemoryDecay    string `yaml:"memory_decay"`

	BetaEnergy      float64 `yaml:"beta_energy"`
	BetaReliability float64 `yaml:"beta_reliability"`

	PenaltyCpu         float64 `yaml:"penalty_cpu"`
	PenaltyMemory      float64 `yaml:"penalty_memory"`
	PenaltyDeadline    float64 `yaml:"penalty_deadline"`
	PenaltyReliability float64 `yaml:"penalty_reliability"`

	BestResponseRefinement bool `yaml:"best_response_refinement"`

	OutputDir string `yaml:"output_dir"`
	GuiPort   int    `yaml:"gui_port"`
}

var SirenGeneralConfig GeneralConfig

// Normalized DVFS operating range and replication bound, shared by the
// candidate encoding and every decoder of a candidate position.
const (
	FreqMinGhz = 0.4
	FreqMaxGhz = 2.0

	MinReplicas = 1
	MaxReplicas = 3

	DefaultFrequencyGhz = 2.0

	// Minimum replicated success probability required for critical tasks.
	DefaultMinReliability = 0.99
)
