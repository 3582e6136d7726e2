package prefabs

import (
	"fmt"
	"strings"

	"github.com/milk9111/boxworld/boxworld"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// MoverSpec is the tuning of a BoxMover. Velocities are pixels per second,
// gravity and acceleration are added once per simulation step.
type MoverSpec struct {
	Name               string   `yaml:"name"`
	Speed              float64  `yaml:"speed"`
	Jump               float64  `yaml:"jump"`
	Gravity            float64  `yaml:"gravity"`
	GravityFallFactor  *float64 `yaml:"gravity_fall_factor"`
	Acceleration       float64  `yaml:"acceleration"`
	DecelerationFactor *float64 `yaml:"deceleration_factor"`
	Unnormalized       bool     `yaml:"unnormalized"`
}

// LoadMoverSpec loads a mover profile by name, with or without the .yaml extension.
func LoadMoverSpec(name string) (*MoverSpec, error) {
	if name == "" {
		return nil, fmt.Errorf("prefabs: empty mover profile name")
	}
	if !isSpecFile(name) {
		name += ".yaml"
	}
	spec, err := LoadSpec[MoverSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(name, ".yaml")
	}
	return &spec, nil
}

func (s *MoverSpec) Validate() error {
	if s.Speed < 0 {
		return fmt.Errorf("speed must not be negative, got %v", s.Speed)
	}
	if s.Jump < 0 {
		return fmt.Errorf("jump must not be negative, got %v", s.Jump)
	}
	if s.DecelerationFactor != nil && (*s.DecelerationFactor < 0 || *s.DecelerationFactor > 1) {
		return fmt.Errorf("deceleration_factor must be within [0, 1], got %v", *s.DecelerationFactor)
	}
	return nil
}

// Mover builds a BoxMover at rest from the profile.
func (s *MoverSpec) Mover() boxworld.BoxMover {
	m := boxworld.NewBoxMover(s.Speed, s.Jump, s.Gravity, s.Acceleration)
	if s.GravityFallFactor != nil {
		m.GravityFallFactor = *s.GravityFallFactor
	}
	if s.DecelerationFactor != nil {
		m.DecelerationFactor = *s.DecelerationFactor
	}
	m.IsUnnormalized = s.Unnormalized
	return m
}
