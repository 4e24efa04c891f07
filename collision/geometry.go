package collision

//go:generate go tool mockgen -destination=./mocks/geometry_mock.go -package=mocks . Geometry

import "github.com/milk9111/hordecore/common"

// Obstacle is a static circle in the level. Radius is the collision size used
// by the overlap test, not a geometric radius.
type Obstacle struct {
	Position common.Vec2
	Radius   float64
	Solid    bool
}

// Geometry answers which static obstacles may overlap a circle at (x, y).
// Implementations may return a superset; callers apply Overlaps themselves.
type Geometry interface {
	Query(x, y, radius float64) []Obstacle
}

// Overlaps is the blocking test shared by geometry and actors: two circles
// touch when their distance is below the mean of their sizes.
func Overlaps(a common.Vec2, ra float64, b common.Vec2, rb float64) bool {
	return a.Dist(b) < (ra+rb)/2
}

// SolidAt reports whether a circle at p would overlap any solid obstacle.
func SolidAt(g Geometry, p common.Vec2, radius float64) bool {
	if g == nil {
		return false
	}
	for _, o := range g.Query(p.X, p.Y, radius) {
		if o.Solid && Overlaps(p, radius, o.Position, o.Radius) {
			return true
		}
	}
	return false
}
