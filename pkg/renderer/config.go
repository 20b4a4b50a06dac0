package renderer

import (
	"bytes"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config contains every parameter of a progressive photon mapping render
type Config struct {
	Width                 int     `yaml:"width"`                   // Image width in pixels
	Height                int     `yaml:"height"`                  // Image height in pixels
	Iter                  int     `yaml:"iter"`                    // Total number of iterations
	PhotonPerIter         int     `yaml:"photon_per_iter"`         // Photons emitted per iteration
	Radius0               float64 `yaml:"radius_0"`                // Initial gather radius
	Alpha                 float64 `yaml:"alpha"`                   // Radius reduction parameter in (0, 1]
	K                     float64 `yaml:"k"`                       // Cone filter parameter
	Threads               int     `yaml:"threads"`                 // Number of render workers
	Supersampling         int     `yaml:"supersampling"`           // Eye rays per pixel per iteration
	Checkpoint            int     `yaml:"checkpoint"`              // Iterations between saved results
	LensRadius            float64 `yaml:"lens_radius"`             // 0 for a pinhole camera
	Depth                 float64 `yaml:"depth"`                   // Focus distance of the thin lens
	MeanDist              float64 `yaml:"mean_dist"`               // Mean free path of the medium, 0 for none
	VolumetricRadiusRatio float64 `yaml:"volumetric_radius_ratio"` // Volume gather radius relative to the surface radius
	Seed                  uint64  `yaml:"seed"`                    // Base seed of the worker random streams
	BounceLimit           int     `yaml:"bounce_limit"`            // Hard cap on path length
	VolumeSteps           int     `yaml:"volume_steps"`            // Max medium samples per eye segment
}

// DefaultConfig returns the default render configuration
func DefaultConfig() Config {
	return Config{
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
		LensRadius:            0,
		Depth:                 100,
		MeanDist:              0,
		VolumetricRadiusRatio: 1,
		Seed:                  42,
		BounceLimit:           20,
		VolumeSteps:           10,
	}
}

// Validate rejects configurations the renderer cannot run
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"iter", c.Iter},
		{"photon_per_iter", c.PhotonPerIter},
		{"threads", c.Threads},
		{"supersampling", c.Supersampling},
		{"checkpoint", c.Checkpoint},
		{"bounce_limit", c.BounceLimit},
		{"volume_steps", c.VolumeSteps},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}

	switch {
	case c.Radius0 <= 0:
		return errors.Errorf("radius_0 must be positive, got %g", c.Radius0)
	case c.Alpha <= 0 || c.Alpha > 1:
		return errors.Errorf("alpha must be in (0, 1], got %g", c.Alpha)
	case c.K <= 0:
		return errors.Errorf("k must be positive, got %g", c.K)
	case c.LensRadius < 0:
		return errors.Errorf("lens_radius must not be negative, got %g", c.LensRadius)
	case c.MeanDist < 0:
		return errors.Errorf("mean_dist must not be negative, got %g", c.MeanDist)
	case c.VolumetricRadiusRatio <= 0:
		return errors.Errorf("volumetric_radius_ratio must be positive, got %g", c.VolumetricRadiusRatio)
	}
	return nil
}

// LoadConfig overlays the YAML document read from r onto base. Keys absent
// from the document keep their base values; unknown keys are an error.
func LoadConfig(r io.Reader, base Config) (Config, error) {
	config := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && err != io.EOF {
		return base, errors.Wrap(err, "decoding config")
	}
	return config, nil
}

// LoadConfigFile is LoadConfig reading from the file at path
func LoadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrapf(err, "reading config %s", path)
	}
	config, err := LoadConfig(bytes.NewReader(data), base)
	if err != nil {
		return base, errors.Wrapf(err, "loading %s", path)
	}
	return config, nil
}
