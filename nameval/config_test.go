package nameval

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeSum || cfg.LowMora != 2 || cfg.HighMora != 4 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Weights[FeatureLength] != 0.20 {
		t.Errorf("default weights missing: %v", cfg.Weights)
	}
}

func TestConfigRoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Config{
		Weights: map[string]float64{FeatureLength: 0.5, FeatureOpenness: 0.5},
		Mode:    ModeGeometric,
		Sigma:   2.0,
	}
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Mode != ModeGeometric || loaded.Sigma != 2.0 {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.Weights[FeatureLength] != 0.5 {
		t.Errorf("weights = %v", loaded.Weights)
	}
}

func TestConfigRoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	cfg := Config{
		Weights: map[string]float64{FeatureLength: 0.7, FeatureYoonRatio: 0.3},
		Mode:    ModeSum,
		Sigma:   1.0,
	}
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Weights[FeatureLength] != 0.7 || loaded.Weights[FeatureYoonRatio] != 0.3 {
		t.Errorf("weights = %v", loaded.Weights)
	}
	if loaded.Sigma != 1.0 {
		t.Errorf("sigma = %v", loaded.Sigma)
	}
}

func TestApplyDefaultsClampsBand(t *testing.T) {
	cfg := Config{LowMora: 5, HighMora: 3}
	cfg.ApplyDefaults()
	if cfg.HighMora < cfg.LowMora {
		t.Errorf("band inverted: [%d,%d]", cfg.LowMora, cfg.HighMora)
	}
}
