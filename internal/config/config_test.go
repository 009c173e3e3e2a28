package config

import (
	"io/ioutil"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestRepositoryConfigLoads(t *testing.T) {
	yamlFile, err := ioutil.ReadFile("../../config.yaml")
	if err != nil {
		t.Fatal(err)
	}

	var cfg GeneralConfig
	if err := yaml.UnmarshalStrict(yamlFile, &cfg); err != nil {
		t.Fatal(err)
	}

	if cfg.PopulationSize <= 0 || cfg.MaxIterations <= 0 {
		t.Fatalf("shipped config should carry a runnable optimizer setup: %+v", cfg)
	}
	if cfg.BetaEnergy+cfg.BetaReliability == 0 {
		t.Fatalf("objective weights are missing")
	}
	if cfg.MemoryDecay != "linear" && cfg.MemoryDecay != "exponential" {
		t.Fatalf("unknown memory decay %q", cfg.MemoryDecay)
	}
}
