// Package config loads and validates the pipeline configuration from
// YAML. Every stage receives its settings as an explicit value at
// construction time; there is no global mutable configuration state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anirbans/formsense/internal/kinematics"
	"github.com/anirbans/formsense/internal/rules"
)

// PipelineConfig holds orchestration settings.
type PipelineConfig struct {
	// Workers bounds the fan-out of per-frame stages. Values below 1
	// mean serial processing.
	Workers int `yaml:"workers"`
}

// Config is the complete pipeline configuration.
type Config struct {
	// UserHeightCM anchors pixel-to-centimeter scaling for body
	// measurements.
	UserHeightCM float64 `yaml:"user_height_cm"`

	Features kinematics.Config `yaml:"features"`
	Rules    rules.Config      `yaml:"rules"`
	Pipeline PipelineConfig    `yaml:"pipeline"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		UserHeightCM: 170,
		Features:     kinematics.DefaultConfig(),
		Rules:        rules.DefaultConfig(),
		Pipeline:     PipelineConfig{Workers: 1},
	}
}

// Load reads a YAML configuration file, overlaying it on the defaults,
// and validates the result. A load or validation failure is fatal to
// the pipeline invocation: downstream numeric policy is undefined
// without a complete configuration.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration bytes over the defaults and
// validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every numeric policy the stages depend on is
// usable.
func (c Config) Validate() error {
	if c.UserHeightCM <= 0 {
		return fmt.Errorf("user_height_cm must be positive, got %v", c.UserHeightCM)
	}
	if c.Features.DeltaWindow < 1 {
		return fmt.Errorf("features.delta_window must be at least 1, got %d", c.Features.DeltaWindow)
	}
	if c.Features.Delta2Window < 1 {
		return fmt.Errorf("features.delta2_window must be at least 1, got %d", c.Features.Delta2Window)
	}

	thresholds := []struct {
		name string
		p    rules.Predicate
	}{
		{"rules.pushup.torso_horizontal", c.Rules.Pushup.TorsoHorizontal},
		{"rules.squat.hip_flexion", c.Rules.Squat.HipFlexion},
		{"rules.deadlift.legs_extended", c.Rules.Deadlift.LegsExtended},
		{"rules.deadlift.torso_forward_tilt", c.Rules.Deadlift.TorsoForwardTilt},
		{"rules.overhead_press.elbow_extension", c.Rules.OverheadPress.ElbowExtension},
	}
	for _, t := range thresholds {
		if t.p.Enabled && t.p.Threshold <= 0 {
			return fmt.Errorf("%s.threshold must be positive when enabled, got %v", t.name, t.p.Threshold)
		}
	}

	return nil
}
