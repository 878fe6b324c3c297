package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := decode(DefaultYAML(), FlappyConfig{})
	if err != nil {
		t.Fatalf("decode embedded defaults: %v", err)
	}
	if embedded != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig() differ:\n%+v\n%+v", embedded, DefaultFlappyConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 1.2\ndifficulty:\n  preset: hard\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %f, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Difficulty.Preset != DifficultyHard {
		t.Errorf("Preset = %q, expected hard", cfg.Difficulty.Preset)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != DefaultFlappyConfig().Physics.JumpImpulse {
		t.Errorf("JumpImpulse = %f, expected default", cfg.Physics.JumpImpulse)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("difficulty:\n  min_gap_size: 400\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "gap sizes") {
		t.Errorf("Load() should reject min gap above base gap, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		errMsg string // empty means valid
	}{
		{"defaults", func(*FlappyConfig) {}, ""},
		{"collision radius equal to radius", func(c *FlappyConfig) {
			c.Avatar.CollisionRadius = c.Avatar.Radius
		}, "collision_radius"},
		{"collision radius above radius", func(c *FlappyConfig) {
			c.Avatar.CollisionRadius = c.Avatar.Radius + 1
		}, "collision_radius"},
		{"min gap fills the playable height", func(c *FlappyConfig) {
			// 700 ground - 80 top - 80 bottom margin
			c.Difficulty.MinGapSize = 540
			c.Difficulty.BaseGapSize = 540
		}, ""},
		{"min gap above the playable height", func(c *FlappyConfig) {
			c.Difficulty.MinGapSize = 541
			c.Difficulty.BaseGapSize = 600
		}, "playable height"},
		{"min gap taller than the world", func(c *FlappyConfig) {
			c.Difficulty.MinGapSize = 760
			c.Difficulty.BaseGapSize = 760
		}, "playable height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.errMsg)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}

	for _, p := range Presets {
		if PresetAt(p.Index()) != p {
			t.Errorf("PresetAt(Index()) round trip failed for %q", p)
		}
	}
	if PresetAt(42) != DifficultyNormal {
		t.Error("out-of-range index should select normal")
	}
}

func TestGapSizeMonotonicAndBounded(t *testing.T) {
	curve := NewCurve(DefaultFlappyConfig())
	minGap := DefaultFlappyConfig().Difficulty.MinGapSize

	prev := curve.GapSize(0)
	for s := 1; s <= 1000; s++ {
		gap := curve.GapSize(s)
		if gap > prev {
			t.Fatalf("GapSize(%d) = %f increased from %f", s, gap, prev)
		}
		if gap < minGap {
			t.Fatalf("GapSize(%d) = %f below floor %f", s, gap, minGap)
		}
		prev = gap
	}
	if prev != minGap {
		t.Errorf("GapSize at high score = %f, expected floor %f", prev, minGap)
	}
}

func TestGapSizeSteps(t *testing.T) {
	curve := NewCurve(DefaultFlappyConfig()) // base 260, interval 5, reduction 10

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 260},
		{4, 260},
		{5, 250},
		{14, 240},
		{-3, 260},
		{100, 170},
	}
	for _, tc := range tests {
		if got := curve.GapSize(tc.score); got != tc.expected {
			t.Errorf("GapSize(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestPresetModulatesSpeedAndSpacing(t *testing.T) {
	cfg := DefaultFlappyConfig()
	normal := NewCurve(cfg).Params(0)

	ApplyPreset(&cfg, DifficultyHard)
	hard := NewCurve(cfg).Params(0)
	if hard.Speed <= normal.Speed {
		t.Errorf("hard speed %f should exceed normal %f", hard.Speed, normal.Speed)
	}
	if hard.Spacing >= normal.Spacing {
		t.Errorf("hard spacing %f should be tighter than normal %f", hard.Spacing, normal.Spacing)
	}
	if hard.GapSize != normal.GapSize {
		t.Error("preset should not change the gap curve")
	}

	ApplyPreset(&cfg, DifficultyEasy)
	easy := NewCurve(cfg).Params(0)
	if easy.Speed >= normal.Speed {
		t.Errorf("easy speed %f should be below normal %f", easy.Speed, normal.Speed)
	}
}

func TestWatcherDeliversReloadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("physics:\n  gravity: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Configs:
			if cfg.Physics.Gravity == 1.5 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reloaded config")
		}
	}
}
