package collision

import "github.com/jakecoffman/cp"

// SpaceGeometry indexes static obstacles as circle shapes on a Chipmunk
// space's static body and answers queries with the space's spatial index.
type SpaceGeometry struct {
	space     *cp.Space
	obstacles []Obstacle
}

func NewSpaceGeometry(obstacles ...Obstacle) *SpaceGeometry {
	g := &SpaceGeometry{space: cp.NewSpace()}
	for _, o := range obstacles {
		g.Add(o)
	}
	return g
}

// Add inserts an obstacle. Geometry must not change while a tick is running.
func (g *SpaceGeometry) Add(o Obstacle) {
	if o.Radius <= 0 {
		return
	}
	shape := cp.NewCircle(g.space.StaticBody, o.Radius/2, cp.Vector{X: o.Position.X, Y: o.Position.Y})
	shape.UserData = o
	g.space.AddShape(shape)
	g.obstacles = append(g.obstacles, o)
}

// Query returns the obstacles whose bounds touch the box around (x, y).
// The result is a superset of the overlapping ones; callers filter with
// Overlaps.
func (g *SpaceGeometry) Query(x, y, radius float64) []Obstacle {
	if g == nil || len(g.obstacles) == 0 {
		return nil
	}
	var out []Obstacle
	bb := cp.NewBBForCircle(cp.Vector{X: x, Y: y}, radius)
	g.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if o, ok := shape.UserData.(Obstacle); ok {
			out = append(out, o)
		}
	}, nil)
	return out
}

// Obstacles returns every indexed obstacle in insertion order.
func (g *SpaceGeometry) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.obstacles...)
}
