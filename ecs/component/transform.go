package component

import "github.com/milk9111/hordecore/common"

// Transform is an entity's world position. Previous is written once per tick
// before any movement and is used to derive velocity.
type Transform struct {
	Position common.Vec2
	Previous common.Vec2
}

// Velocity is the displacement since the previous tick divided by dt.
func (t Transform) Velocity(dt float64) common.Vec2 {
	if dt <= 0 {
		return common.Vec2{}
	}
	return t.Position.Sub(t.Previous).Mul(1 / dt)
}

var TransformComponent = NewComponent[Transform]("transform")
