package sim

import "github.com/milk9111/hordecore/common"

// Intent is the set of held movement keys.
type Intent struct {
	Up, Down, Left, Right bool
}

// Vector converts held keys to a direction. Opposite keys cancel and
// diagonals scale each axis by common.DiagonalFactor.
func (i Intent) Vector() common.Vec2 {
	var v common.Vec2
	if i.Left {
		v.X--
	}
	if i.Right {
		v.X++
	}
	if i.Up {
		v.Y--
	}
	if i.Down {
		v.Y++
	}
	if v.X != 0 && v.Y != 0 {
		v = v.Mul(common.DiagonalFactor)
	}
	return v
}
