package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the scene: window, camera, body kinematics, starfield and logging.
// Zero values in a loaded file keep the defaults; see Merge.
type Config struct {
	Title     string `yaml:"title" toml:"title"`
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	TargetFPS int    `yaml:"target_fps" toml:"target_fps"`
	ShowFPS   bool   `yaml:"show_fps" toml:"show_fps"`

	// Camera sits on +Z looking at the origin, where the body lives.
	CameraDistance float64 `yaml:"camera_distance" toml:"camera_distance"`
	FovY           float64 `yaml:"fov_y" toml:"fov_y"` // degrees
	Near           float64 `yaml:"near" toml:"near"`
	Far            float64 `yaml:"far" toml:"far"`

	Radius           float64 `yaml:"radius" toml:"radius"`
	SpeedSpan        float64 `yaml:"speed_span" toml:"speed_span"`                 // initial velocity in ±span/2
	PushSpan         float64 `yaml:"push_span" toml:"push_span"`                   // release velocity in ±span/2
	MaxRotationSpeed float64 `yaml:"max_rotation_speed" toml:"max_rotation_speed"` // rad/frame
	ZThreshold       float64 `yaml:"z_threshold" toml:"z_threshold"`
	ZDecay           float64 `yaml:"z_decay" toml:"z_decay"`

	StarCount  int     `yaml:"star_count" toml:"star_count"`
	StarSpread float64 `yaml:"star_spread" toml:"star_spread"`
	StarSpin   float64 `yaml:"star_spin" toml:"star_spin"`
	FogDensity float64 `yaml:"fog_density" toml:"fog_density"`

	// Seed of the PRNG; 0 means time based.
	Seed    uint64 `yaml:"seed" toml:"seed"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns the configuration of the original scene.
func Default() Config {
	return Config{
		Title:            "Dodeca",
		Width:            1280,
		Height:           720,
		TargetFPS:        60,
		CameraDistance:   10,
		FovY:             75,
		Near:             0.1,
		Far:              1000,
		Radius:           1.5,
		SpeedSpan:        0.15,
		PushSpan:         0.2,
		MaxRotationSpeed: 0.02,
		ZThreshold:       0.1,
		ZDecay:           0.9,
		StarCount:        1500,
		StarSpread:       100,
		StarSpin:         0.0005,
		FogDensity:       0.02,
		LogFile:          "logs/dodeca.txt",
	}
}

// Validation errors.
var (
	ErrCameraDistance = errors.New("camera_distance must be > 0")
	ErrFov            = errors.New("fov_y must be in (0, 180)")
	ErrRadius         = errors.New("radius must be >= 0")
	ErrWindowSize     = errors.New("width and height must be > 0")
	ErrFormat         = errors.New("unsupported config format")
)

// Validate rejects camera and window values for which the viewport math is undefined.
// A radius larger than the visible half-extent is allowed and yields degenerate bounds.
func (c Config) Validate() error {
	var errs []error
	if c.CameraDistance <= 0 {
		errs = append(errs, ErrCameraDistance)
	}
	if c.FovY <= 0 || c.FovY >= 180 {
		errs = append(errs, ErrFov)
	}
	if c.Radius < 0 {
		errs = append(errs, ErrRadius)
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, ErrWindowSize)
	}
	return errors.Join(errs...)
}

// Merge overlays the non-zero fields of o onto c.
func (c *Config) Merge(o Config) error {
	return copier.CopyWithOption(c, &o, copier.Option{IgnoreEmpty: true})
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file on top of Default().
// A missing file returns Default() and no error.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return conf, fmt.Errorf("read config: %w", err)
	}

	var file Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return conf, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if err != nil {
		return conf, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := conf.Merge(file); err != nil {
		return conf, fmt.Errorf("merge %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("invalid %s: %w", path, err)
	}
	return conf, nil
}
