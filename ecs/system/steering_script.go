package system

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs"
	"github.com/milk9111/hordecore/ecs/component"
	"github.com/milk9111/hordecore/prefabs"
)

const steerDispatchScript = `
if __phase == "steer" {
	steer(__engine, __state)
}
`

// SteerInput is what a steering script can observe about its enemy.
type SteerInput struct {
	Distance       float64
	PreferredRange float64
	HealthFraction float64
}

// ScriptLoader resolves a script name to source.
type ScriptLoader func(name string) ([]byte, error)

// SteeringScripts runs tengo steering scripts. Each script is compiled once
// and cloned per enemy so every enemy keeps its own globals and state map.
type SteeringScripts struct {
	load     ScriptLoader
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
	runtimes map[ecs.Entity]*steerRuntime
}

type steerRuntime struct {
	script   string
	compiled *tengo.Compiled
	state    *tengo.Map
	mode     component.SteerMode
	sign     float64
}

func NewSteeringScripts(load ScriptLoader) *SteeringScripts {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &SteeringScripts{
		load:     load,
		compiled: map[string]*tengo.Compiled{},
		failed:   map[string]bool{},
		runtimes: map[ecs.Entity]*steerRuntime{},
	}
}

// Reset drops every compiled script so edited sources are picked up.
func (s *SteeringScripts) Reset() {
	if s == nil {
		return
	}
	s.compiled = map[string]*tengo.Compiled{}
	s.failed = map[string]bool{}
	s.runtimes = map[ecs.Entity]*steerRuntime{}
}

// Steer runs the enemy's script and returns the chosen mode. Scripts that
// fail to load or run make the enemy seek.
func (s *SteeringScripts) Steer(e ecs.Entity, script string, in SteerInput) (component.SteerMode, float64) {
	if s == nil || strings.TrimSpace(script) == "" {
		return component.SteerSeek, 0
	}
	rt, err := s.runtime(e, script)
	if err != nil {
		if !s.failed[script] {
			slog.Warn("steering script unavailable", "script", script, "err", err)
			s.failed[script] = true
		}
		return component.SteerSeek, 0
	}

	rt.mode, rt.sign = component.SteerSeek, 0
	if err := rt.run("steer", buildSteerEngine(rt, in)); err != nil {
		slog.Warn("steering script error", "script", script, "entity", e, "err", err)
		return component.SteerSeek, 0
	}
	return rt.mode, rt.sign
}

// Prune forgets runtimes of entities that no longer exist.
func (s *SteeringScripts) Prune(w *ecs.World) {
	if s == nil {
		return
	}
	for e := range s.runtimes {
		if !ecs.IsAlive(w, e) {
			delete(s.runtimes, e)
		}
	}
}

func (s *SteeringScripts) runtime(e ecs.Entity, script string) (*steerRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.script == script {
		return rt, nil
	}
	if s.failed[script] {
		return nil, fmt.Errorf("script %q failed earlier", script)
	}
	base, ok := s.compiled[script]
	if !ok {
		c, err := s.compile(script)
		if err != nil {
			return nil, err
		}
		s.compiled[script] = c
		base = c
	}
	rt := &steerRuntime{
		script:   script,
		compiled: base.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		mode:     component.SteerSeek,
	}
	s.runtimes[e] = rt
	return rt, nil
}

func (s *SteeringScripts) compile(script string) (*tengo.Compiled, error) {
	src, err := s.load(script)
	if err != nil {
		return nil, fmt.Errorf("steering: load %s: %w", script, err)
	}
	ts := tengo.NewScript([]byte(string(src) + "\n" + steerDispatchScript))
	_ = ts.Add("__phase", "")
	_ = ts.Add("__engine", map[string]any{})
	_ = ts.Add("__state", map[string]any{})
	ts.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := ts.Compile()
	if err != nil {
		return nil, fmt.Errorf("steering: compile %s: %w", script, err)
	}
	return compiled, nil
}

func (rt *steerRuntime) run(phase string, engine *tengo.ImmutableMap) error {
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildSteerEngine(rt *steerRuntime, in SteerInput) *tengo.ImmutableMap {
	number := func(name string, v float64) tengo.Object {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Float{Value: v}, nil
		}}
	}
	choose := func(name string, mode component.SteerMode) tengo.Object {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			rt.mode = mode
			return tengo.TrueValue, nil
		}}
	}

	values := map[string]tengo.Object{
		"distance_to_player": number("distance_to_player", in.Distance),
		"preferred_range":    number("preferred_range", in.PreferredRange),
		"health_fraction":    number("health_fraction", in.HealthFraction),
		"seek":               choose("seek", component.SteerSeek),
		"retreat":            choose("retreat", component.SteerRetreat),
		"hold":               choose("hold", component.SteerHold),
	}
	values["strafe"] = &tengo.UserFunction{Name: "strafe", Value: func(args ...tengo.Object) (tengo.Object, error) {
		rt.mode = component.SteerStrafe
		rt.sign = 1
		if len(args) > 0 && objectAsFloat(args[0]) < 0 {
			rt.sign = -1
		}
		return tengo.TrueValue, nil
	}}
	return &tengo.ImmutableMap{Value: values}
}

func objectAsFloat(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Int:
		return float64(v.Value)
	case *tengo.Float:
		return v.Value
	default:
		return 0
	}
}

// steerDirection turns a steering mode into a unit direction from pos.
func steerDirection(mode component.SteerMode, sign float64, pos, target common.Vec2) common.Vec2 {
	toward := target.Sub(pos)
	if toward.Len() < 1 {
		return common.Vec2{}
	}
	toward = toward.Norm()
	switch mode {
	case component.SteerRetreat:
		return toward.Mul(-1)
	case component.SteerStrafe:
		if sign == 0 {
			sign = 1
		}
		return common.V(-toward.Y, toward.X).Mul(sign)
	case component.SteerHold:
		return common.Vec2{}
	}
	return toward
}
