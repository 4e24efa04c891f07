package collision

import (
	"math"

	"github.com/milk9111/hordecore/common"
)

const (
	// SoftFactor shrinks the actor-actor threshold so crowds may overlap slightly.
	SoftFactor = 0.8
	// PushFraction of a blocked displacement is transferred to the blocking actor.
	PushFraction = 0.35
	// MinSeekDistance stops seeking movers this close to their target.
	MinSeekDistance = 1.0
)

// Body is another actor the mover must not walk through.
type Body struct {
	Position common.Vec2
	Radius   float64
}

// Mover is the actor being resolved.
type Mover struct {
	Position common.Vec2
	Radius   float64
	Speed    float64
}

// Contact records that the mover was blocked by Bodies[Index] and pushed it.
type Contact struct {
	Index int
	Push  common.Vec2
}

// Result is the outcome of one movement resolution.
type Result struct {
	Position common.Vec2
	Moved    bool
	Contacts []Contact
}

// Resolver moves circles through static geometry and other actors with an
// axis-separated test, soft actor pushes and an axis-aligned slide fallback.
type Resolver struct {
	Geometry     Geometry
	SoftFactor   float64
	PushFraction float64
}

// NewResolver returns a resolver over g with the default soft factor and push.
func NewResolver(g Geometry) *Resolver {
	return &Resolver{Geometry: g, SoftFactor: SoftFactor, PushFraction: PushFraction}
}

// Resolve moves m along dir for dt seconds. Pushed bodies are updated in
// place in others and reported as contacts, so the caller can write them back.
func (r *Resolver) Resolve(m Mover, dir common.Vec2, dt float64, others []Body) Result {
	res := Result{Position: m.Position}
	if dir.IsZero() || m.Speed <= 0 || dt <= 0 {
		return res
	}
	disp := dir.Norm().Mul(m.Speed * dt)
	pos := m.Position

	if disp.X != 0 {
		pos = r.step(pos, common.Vec2{X: disp.X}, m.Radius, others, &res)
	}
	if disp.Y != 0 {
		pos = r.step(pos, common.Vec2{Y: disp.Y}, m.Radius, others, &res)
	}

	if pos == m.Position {
		mag := disp.Len()
		for _, alt := range []common.Vec2{
			{X: common.Sign(disp.X) * mag},
			{Y: common.Sign(disp.Y) * mag},
		} {
			if alt.IsZero() {
				continue
			}
			cand := m.Position.Add(alt)
			if r.solid(cand, m.Radius) || r.blockingActor(m.Position, cand, m.Radius, others) >= 0 {
				continue
			}
			pos = cand
			break
		}
	}

	res.Position = pos
	res.Moved = pos != m.Position
	return res
}

// step tries one axis. Geometry rejects the move outright; an actor rejects
// it and gets pushed.
func (r *Resolver) step(pos, axis common.Vec2, radius float64, others []Body, res *Result) common.Vec2 {
	cand := pos.Add(axis)
	if r.solid(cand, radius) {
		return pos
	}
	idx := r.blockingActor(pos, cand, radius, others)
	if idx < 0 {
		return cand
	}
	push := axis.Mul(r.pushFraction())
	pushed := others[idx].Position.Add(push)
	if r.solid(pushed, others[idx].Radius) {
		push = common.Vec2{}
	} else {
		others[idx].Position = pushed
	}
	res.Contacts = append(res.Contacts, Contact{Index: idx, Push: push})
	return pos
}

func (r *Resolver) solid(p common.Vec2, radius float64) bool {
	return SolidAt(r.Geometry, p, radius)
}

// blockingActor returns the first body the move from -> to would sink into,
// or -1. Moves that increase the separation are never blocked, so actors
// that spawned overlapping can still walk apart.
func (r *Resolver) blockingActor(from, to common.Vec2, radius float64, others []Body) int {
	soft := r.softFactor()
	for i, o := range others {
		threshold := soft * (radius + o.Radius) / 2
		d := to.Dist(o.Position)
		if d >= threshold {
			continue
		}
		if d > from.Dist(o.Position)-1e-9 {
			continue
		}
		return i
	}
	return -1
}

func (r *Resolver) softFactor() float64 {
	if r.SoftFactor <= 0 {
		return SoftFactor
	}
	return r.SoftFactor
}

func (r *Resolver) pushFraction() float64 {
	if r.PushFraction <= 0 {
		return PushFraction
	}
	return math.Min(r.PushFraction, 1)
}

// SeekDirection points from pos toward target, or is zero when the target is
// closer than MinSeekDistance.
func SeekDirection(pos, target common.Vec2) common.Vec2 {
	delta := target.Sub(pos)
	if delta.Len() < MinSeekDistance {
		return common.Vec2{}
	}
	return delta.Norm()
}
