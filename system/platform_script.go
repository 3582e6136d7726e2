package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/boxworld/boxworld"
	"github.com/milk9111/boxworld/prefabs"
)

// Globals handed to every platform script. Scripts answer by declaring
// target_x and target_y; an undeclared target keeps that axis in place.
var platformScriptInputs = []string{"t", "dt", "origin_x", "origin_y", "x", "y"}

type platformScript struct {
	name     string
	compiled *tengo.Compiled
}

type scriptFrame struct {
	T, DT  float64
	Origin boxworld.Vec2
	Pos    boxworld.Vec2
}

func loadPlatformScript(name string) (*platformScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return compilePlatformScript(name, src)
}

func compilePlatformScript(name string, src []byte) (*platformScript, error) {
	script := tengo.NewScript(src)
	for _, v := range platformScriptInputs {
		_ = script.Add(v, 0.0)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script %s: %w", name, err)
	}
	return &platformScript{name: name, compiled: compiled}, nil
}

// target runs the script once and returns where the wall wants to be.
func (s *platformScript) target(f scriptFrame) (boxworld.Vec2, error) {
	values := map[string]float64{
		"t":        f.T,
		"dt":       f.DT,
		"origin_x": f.Origin.X,
		"origin_y": f.Origin.Y,
		"x":        f.Pos.X,
		"y":        f.Pos.Y,
	}
	for k, v := range values {
		if err := s.compiled.Set(k, v); err != nil {
			return f.Pos, err
		}
	}
	if err := s.run(); err != nil {
		return f.Pos, err
	}

	out := f.Pos
	if s.compiled.IsDefined("target_x") {
		out.X = s.compiled.Get("target_x").Float()
	}
	if s.compiled.IsDefined("target_y") {
		out.Y = s.compiled.Get("target_y").Float()
	}
	return out, nil
}

// run executes the compiled script. The tengo VM panics on some runtime
// faults, integer division by zero among them, so those come back as errors.
func (s *platformScript) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("run script %s: %v", s.name, r)
		}
	}()
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("run script %s: %w", s.name, err)
	}
	return nil
}
