package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesFallback(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(defaultYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := Default()
	if fromYAML.Scoring != want.Scoring {
		t.Errorf("scoring mismatch: yaml %+v, fallback %+v", fromYAML.Scoring, want.Scoring)
	}
	if fromYAML.Levels != want.Levels {
		t.Errorf("levels mismatch: yaml %+v, fallback %+v", fromYAML.Levels, want.Levels)
	}
	if fromYAML.Events != want.Events {
		t.Errorf("events mismatch: yaml %+v, fallback %+v", fromYAML.Events, want.Events)
	}
	if fromYAML.Missions != want.Missions {
		t.Errorf("missions mismatch: yaml %+v, fallback %+v", fromYAML.Missions, want.Missions)
	}
	for kind, slot := range want.PowerUps.Inventory {
		if fromYAML.PowerUps.Inventory[kind] != slot {
			t.Errorf("inventory %s mismatch: yaml %+v, fallback %+v", kind, fromYAML.PowerUps.Inventory[kind], slot)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("scoring:\n  base_gain: 20\n  risk_bonus: 50\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scoring.BaseGain != 20 || cfg.Scoring.RiskBonus != 50 {
		t.Errorf("custom values not applied: %+v", cfg.Scoring)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load("/nonexistent/neonrift.yaml"); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}
