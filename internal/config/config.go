// Package config loads runtime settings from defaults, an optional file and
// CHUNKRUN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samdwyer/chunkrun/internal/physics"
)

// EnvPrefix is prepended to every environment override, e.g. CHUNKRUN_SIM_FPS.
const EnvPrefix = "CHUNKRUN"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// PhysicsConfig mirrors physics.Params.
type PhysicsConfig struct {
	Gravity      float64 `mapstructure:"gravity"`
	Acceleration float64 `mapstructure:"acceleration"`
	Decay        float64 `mapstructure:"decay"`
	StopBelow    float64 `mapstructure:"stop_below"`
	JumpImpulse  float64 `mapstructure:"jump_impulse"`
	RayStep      int     `mapstructure:"ray_step"`
}

// SimConfig controls the frame loop.
type SimConfig struct {
	FPS     int  `mapstructure:"fps"`
	Players int  `mapstructure:"players"` // Player slots to create, at most the level's spawn count
	NoClip  bool `mapstructure:"noclip"`
	Clouds  int  `mapstructure:"clouds"` // Cloud pool capacity
}

// LogConfig selects level and destination for logrus.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // Empty logs to stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// TelemetryConfig toggles the OTLP exporter.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the full runtime configuration.
type Config struct {
	Physics   PhysicsConfig   `mapstructure:"physics"`
	Sim       SimConfig       `mapstructure:"sim"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

func setDefaults(v *viper.Viper) {
	p := physics.DefaultParams()
	v.SetDefault("physics.gravity", p.Gravity)
	v.SetDefault("physics.acceleration", p.Acceleration)
	v.SetDefault("physics.decay", p.Decay)
	v.SetDefault("physics.stop_below", p.StopBelow)
	v.SetDefault("physics.jump_impulse", p.JumpImpulse)
	v.SetDefault("physics.ray_step", p.RayStep)

	v.SetDefault("sim.fps", 30)
	v.SetDefault("sim.players", 2)
	v.SetDefault("sim.noclip", false)
	v.SetDefault("sim.clouds", 16)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "chunkrun.log")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("telemetry.enabled", false)
}

// Load reads the configuration. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Sim.FPS <= 0:
		return fmt.Errorf("%w: sim.fps must be positive, got %d", ErrInvalid, c.Sim.FPS)
	case c.Sim.Players < 0:
		return fmt.Errorf("%w: sim.players must not be negative, got %d", ErrInvalid, c.Sim.Players)
	case c.Sim.Clouds <= 0:
		return fmt.Errorf("%w: sim.clouds must be positive, got %d", ErrInvalid, c.Sim.Clouds)
	case c.Physics.RayStep <= 0:
		return fmt.Errorf("%w: physics.ray_step must be positive, got %d", ErrInvalid, c.Physics.RayStep)
	case c.Physics.Decay <= 0 || c.Physics.Decay > 1:
		return fmt.Errorf("%w: physics.decay must be in (0, 1], got %g", ErrInvalid, c.Physics.Decay)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: physics.gravity must not be negative, got %g", ErrInvalid, c.Physics.Gravity)
	case c.Physics.JumpImpulse > 0:
		return fmt.Errorf("%w: physics.jump_impulse must point up (<= 0), got %g", ErrInvalid, c.Physics.JumpImpulse)
	case c.Log.MaxSizeMB <= 0:
		return fmt.Errorf("%w: log.max_size_mb must be positive, got %d", ErrInvalid, c.Log.MaxSizeMB)
	}
	return nil
}

// PhysicsParams converts the physics section for the integrator.
func (c *Config) PhysicsParams() physics.Params {
	return physics.Params{
		Gravity:      c.Physics.Gravity,
		Acceleration: c.Physics.Acceleration,
		Decay:        c.Physics.Decay,
		StopBelow:    c.Physics.StopBelow,
		JumpImpulse:  c.Physics.JumpImpulse,
		RayStep:      c.Physics.RayStep,
	}
}
