package model

// RunResult is the serialized outcome of one optimizer run, written to the
// results file and served by the gui.
type RunResult struct {
	Name     string `json:"name"`
	Scenario string `json:"scenario"`
	FogNodes int    `json:"fog_nodes"`
	Tasks    int    `json:"tasks"`
	Seed     int64  `json:"seed"`

	TaskSuccessRate float64 `json:"task_success_rate"`
	TotalEnergyJ    float64 `json:"total_energy_j"`
	Penalty         float64 `json:"penalty"`
	BestFitness     float64 `json:"best_fitness"`
	Feasible        bool    `json:"feasible"`

	Convergence []float64 `json:"convergence_curve"`

	BestSchedule map[int]Assignment `json:"best_schedule"`

	Timestamp string `json:"timestamp"`
}
