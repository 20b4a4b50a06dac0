package renderer

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	expected := Config{
		Width:                 720,
		Height:                480,
		Iter:                  16,
		PhotonPerIter:         262144,
		Radius0:               5,
		Alpha:                 0.7,
		K:                     1.1,
		Threads:               runtime.NumCPU(),
		Supersampling:         1,
		Checkpoint:            4,
		Depth:                 100,
		VolumetricRadiusRatio: 1,
		Seed:                  42,
		BounceLimit:           20,
		VolumeSteps:           10,
	}
	if diff := cmp.Diff(expected, config); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "width"},
		{"zero height", func(c *Config) { c.Height = 0 }, "height"},
		{"zero iter", func(c *Config) { c.Iter = 0 }, "iter"},
		{"zero photons", func(c *Config) { c.PhotonPerIter = 0 }, "photon_per_iter"},
		{"zero threads", func(c *Config) { c.Threads = 0 }, "threads"},
		{"zero supersampling", func(c *Config) { c.Supersampling = 0 }, "supersampling"},
		{"zero checkpoint", func(c *Config) { c.Checkpoint = 0 }, "checkpoint"},
		{"zero radius", func(c *Config) { c.Radius0 = 0 }, "radius_0"},
		{"zero alpha", func(c *Config) { c.Alpha = 0 }, "alpha"},
		{"alpha above one", func(c *Config) { c.Alpha = 1.5 }, "alpha"},
		{"negative k", func(c *Config) { c.K = -1 }, "k must"},
		{"negative lens", func(c *Config) { c.LensRadius = -0.1 }, "lens_radius"},
		{"negative mean dist", func(c *Config) { c.MeanDist = -1 }, "mean_dist"},
		{"zero volume ratio", func(c *Config) { c.VolumetricRadiusRatio = 0 }, "volumetric_radius_ratio"},
		{"zero bounce limit", func(c *Config) { c.BounceLimit = 0 }, "bounce_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected error about %s, got %v", tt.field, err)
			}
		})
	}

	config := DefaultConfig()
	config.Alpha = 1
	config.MeanDist = 5
	if err := config.Validate(); err != nil {
		t.Errorf("Expected alpha=1 with a medium to be valid, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	doc := `
width: 64
height: 48
mean_dist: 5
volumetric_radius_ratio: 0.5
seed: 7
`
	config, err := LoadConfig(strings.NewReader(doc), DefaultConfig())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	expected := DefaultConfig()
	expected.Width = 64
	expected.Height = 48
	expected.MeanDist = 5
	expected.VolumetricRadiusRatio = 0.5
	expected.Seed = 7
	if diff := cmp.Diff(expected, config); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_EmptyAndInvalid(t *testing.T) {
	base := DefaultConfig()

	config, err := LoadConfig(strings.NewReader(""), base)
	if err != nil {
		t.Fatalf("Empty document should load: %v", err)
	}
	if diff := cmp.Diff(base, config); diff != "" {
		t.Errorf("Empty document changed config (-want +got):\n%s", diff)
	}

	if _, err := LoadConfig(strings.NewReader("widht: 10\n"), base); err == nil {
		t.Error("Expected an error for an unknown key")
	}
	if _, err := LoadConfig(strings.NewReader("width: [1, 2]\n"), base); err == nil {
		t.Error("Expected an error for a mistyped value")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte("iter: 3\ncheckpoint: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigFile(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if config.Iter != 3 || config.Checkpoint != 1 {
		t.Errorf("Expected iter=3 checkpoint=1, got iter=%d checkpoint=%d", config.Iter, config.Checkpoint)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), DefaultConfig()); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
