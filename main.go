package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/Anonymous0-0paper/SIREN/internal/config"
	"github.com/Anonymous0-0paper/SIREN/internal/game"
	"github.com/Anonymous0-0paper/SIREN/internal/gui"
	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/internal/objective"
	"github.com/Anonymous0-0paper/SIREN/internal/optimizer"
	"github.com/Anonymous0-0paper/SIREN/internal/scenario"
	"github.com/Anonymous0-0paper/SIREN/logging"
	"github.com/Anonymous0-0paper/SIREN/sim"
	"gopkg.in/yaml.v2"
)

var log = logging.Get()

const feasibilityTolerance = 1e-3

func main() {
	config_file_path := flag.String("config_file", "config.yaml", "Path to config file")
	flag.Parse()

	yamlFile, err := ioutil.ReadFile(*config_file_path)
	if err != nil {
		log.Err(err).Msgf("could not load config")
		os.Exit(1)
	}

	if err := yaml.UnmarshalStrict(yamlFile, &config.SirenGeneralConfig); err != nil {
		log.Err(err).Msgf("could not load config")
		os.Exit(1)
	}
	cfg := config.SirenGeneralConfig

	topo, tasks, err := scenario.Build(scenario.Params{
		Kind:     scenario.Kind(cfg.Scenario),
		FogNodes: cfg.FogNodes,
		Tasks:    cfg.Tasks,
		Seed:     cfg.Seed,
	})
	if err != nil {
		log.Err(err).Msg("could not build scenario")
		os.Exit(1)
	}

	evaluator := objective.NewEvaluator(topo, tasks, cfg.BetaEnergy, cfg.BetaReliability)
	evaluator.Penalties = objective.PenaltyCoefficients{
		Cpu:         cfg.PenaltyCpu,
		Memory:      cfg.PenaltyMemory,
		Deadline:    cfg.PenaltyDeadline,
		Reliability: cfg.PenaltyReliability,
	}

	encoding := optimizer.NewEncoding(len(tasks), topo.NumHosts())
	opt, err := optimizer.New(
		optimizer.Config{
			PopulationSize: cfg.PopulationSize,
			MaxIterations:  cfg.MaxIterations,
			MemoryDecay:    optimizer.DecayScheme(cfg.MemoryDecay),
			Seed:           cfg.Seed,
		},
		encoding,
		evaluator.Fitness,
		optimizer.MemoryDriven{},
	)
	if err != nil {
		log.Err(err).Msg("could not initiate optimizer")
		os.Exit(1)
	}

	searchResult := opt.Run()
	best := searchResult.BestSchedule
	evaluation := evaluator.Evaluate(best)

	if cfg.BestResponseRefinement {
		engine := game.NewEngine(topo, tasks, cfg.BetaReliability, cfg.BetaEnergy)
		refined := game.NewBestResponse(engine).FindEquilibrium(best)
		log.Info().
			Float64("search_payoff", engine.SystemPayoff(best)).
			Float64("refined_payoff", engine.SystemPayoff(refined)).
			Msg("best response refinement done")
	}

	replay := sim.Run(topo, tasks, best, cfg.Seed)
	log.Info().
		Int("completed", replay.Completed).
		Int("failed", replay.Failed).
		Float64("replay_energy_j", replay.EnergyJ).
		Msg("replay done")

	runResult := &model.RunResult{
		Name:            cfg.Name,
		Scenario:        cfg.Scenario,
		FogNodes:        cfg.FogNodes,
		Tasks:           cfg.Tasks,
		Seed:            cfg.Seed,
		TaskSuccessRate: evaluation.Reliability,
		TotalEnergyJ:    evaluation.Energy,
		Penalty:         evaluation.Penalty,
		BestFitness:     searchResult.BestFitness,
		Feasible:        evaluator.IsFeasible(best, feasibilityTolerance),
		Convergence:     searchResult.Convergence,
		BestSchedule:    best.Assignments(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	if err := writeResult(runResult, cfg.OutputDir); err != nil {
		log.Err(err).Msg("could not write results")
		os.Exit(1)
	}

	log.Info().
		Float64("task_success_rate", runResult.TaskSuccessRate).
		Float64("total_energy_j", runResult.TotalEnergyJ).
		Float64("penalty", runResult.Penalty).
		Float64("best_fitness", runResult.BestFitness).
		Bool("feasible", runResult.Feasible).
		Msg("run completed")

	if cfg.GuiPort > 0 {
		_, cpuUtilization := evaluator.CheckCpuCapacity(best)
		_, memoryUtilization := evaluator.CheckMemoryCapacity(best)
		gui.SetUp(runResult, cpuUtilization, memoryUtilization)
		gui.Run(fmt.Sprintf(":%d", cfg.GuiPort))
	}
}

func writeResult(result *model.RunResult, outputDir string) error {
	if outputDir == "" {
		outputDir = "results"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	content, err := json.MarshalIndent(result, "", " ")
	if err != nil {
		return err
	}

	path := filepath.Join(outputDir, fmt.Sprintf("results_%s.json", time.Now().Format("20060102_150405")))

	return ioutil.WriteFile(path, content, 0644)
}
