package collision_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/milk9111/hordecore/collision"
	"github.com/milk9111/hordecore/collision/mocks"
	"github.com/milk9111/hordecore/common"
)

// geometryFunc adapts a function to collision.Geometry.
type geometryFunc func(x, y, radius float64) []collision.Obstacle

func (f geometryFunc) Query(x, y, radius float64) []collision.Obstacle {
	return f(x, y, radius)
}

func TestResolveQueriesGeometryAtCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geom := mocks.NewMockGeometry(ctrl)
	geom.EXPECT().Query(10.0, 0.0, 20.0).Return(nil).Times(1)

	r := collision.NewResolver(geom)
	res := r.Resolve(collision.Mover{Radius: 20, Speed: 100}, common.V(1, 0), 0.1, nil)

	assert.True(t, res.Moved)
	assert.InDelta(t, 10, res.Position.X, 1e-9)
	assert.Empty(t, res.Contacts)
}

func TestResolveDegenerateDirectionSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any geometry query fails the test
	geom := mocks.NewMockGeometry(ctrl)
	r := collision.NewResolver(geom)

	start := common.V(5, 5)
	res := r.Resolve(collision.Mover{Position: start, Radius: 20, Speed: 100}, common.Vec2{}, 0.1, nil)
	assert.False(t, res.Moved)
	assert.Equal(t, start, res.Position)

	assert.True(t, collision.SeekDirection(start, common.V(5.5, 5)).IsZero())
}

func TestResolveGeometryBlocksAxis(t *testing.T) {
	// wall to the right: x movement blocked, y slides
	g := collision.NewSpaceGeometry(collision.Obstacle{Position: common.V(30, 0), Radius: 30, Solid: true})
	r := collision.NewResolver(g)

	res := r.Resolve(collision.Mover{Radius: 20, Speed: 100}, common.V(1, 1), 0.1, nil)
	require.True(t, res.Moved)
	assert.Equal(t, 0.0, res.Position.X)
	assert.InDelta(t, 100*0.1/math.Sqrt2, res.Position.Y, 1e-9)
}

func TestResolveIgnoresNonSolid(t *testing.T) {
	g := collision.NewSpaceGeometry(collision.Obstacle{Position: common.V(10, 0), Radius: 30})
	r := collision.NewResolver(g)

	res := r.Resolve(collision.Mover{Radius: 20, Speed: 100}, common.V(1, 0), 0.1, nil)
	assert.InDelta(t, 10, res.Position.X, 1e-9)
}

func TestResolvePushesBlockingActor(t *testing.T) {
	r := collision.NewResolver(nil)
	others := []collision.Body{{Position: common.V(20, 0), Radius: 20}}

	res := r.Resolve(collision.Mover{Radius: 20, Speed: 100}, common.V(1, 0), 0.1, others)
	assert.False(t, res.Moved)
	require.Len(t, res.Contacts, 1)
	assert.Equal(t, 0, res.Contacts[0].Index)
	assert.InDelta(t, 3.5, res.Contacts[0].Push.X, 1e-9)
	assert.InDelta(t, 23.5, others[0].Position.X, 1e-9)
}

func TestResolvePushRejectedBySolid(t *testing.T) {
	g := collision.NewSpaceGeometry(collision.Obstacle{Position: common.V(45, 0), Radius: 30, Solid: true})
	r := collision.NewResolver(g)
	others := []collision.Body{{Position: common.V(20, 0), Radius: 20}}

	res := r.Resolve(collision.Mover{Radius: 20, Speed: 100}, common.V(1, 0), 0.1, others)
	require.Len(t, res.Contacts, 1)
	assert.True(t, res.Contacts[0].Push.IsZero())
	assert.Equal(t, 20.0, others[0].Position.X)
}

func TestResolveWalkingApartIsNeverBlocked(t *testing.T) {
	r := collision.NewResolver(nil)
	others := []collision.Body{{Position: common.V(5, 0), Radius: 20}}

	res := r.Resolve(collision.Mover{Radius: 20, Speed: 100}, common.V(-1, 0), 0.1, others)
	assert.InDelta(t, -10, res.Position.X, 1e-9)
	assert.Empty(t, res.Contacts)
}

func TestResolveAxisFallback(t *testing.T) {
	diag := 100 * 0.1 / math.Sqrt2
	blocked := []common.Vec2{common.V(diag, 0), common.V(0, diag)}
	geom := geometryFunc(func(x, y, _ float64) []collision.Obstacle {
		p := common.V(x, y)
		for _, b := range blocked {
			if p.Dist(b) < 0.5 {
				return []collision.Obstacle{{Position: p, Radius: 20, Solid: true}}
			}
		}
		return nil
	})
	r := collision.NewResolver(geom)

	res := r.Resolve(collision.Mover{Radius: 20, Speed: 100}, common.V(1, 1), 0.1, nil)
	require.True(t, res.Moved)
	assert.InDelta(t, 10, res.Position.X, 1e-9, "full magnitude along pure x")
	assert.Equal(t, 0.0, res.Position.Y)
}

func TestHeadOnActorsKeepSoftSlack(t *testing.T) {
	r := collision.NewResolver(nil)
	bodies := []collision.Body{
		{Position: common.V(-60, 0), Radius: 20},
		{Position: common.V(60, 0), Radius: 20},
	}
	const dt = 1.0 / 60
	minDist := math.Inf(1)

	for step := 0; step < 300; step++ {
		for i := range bodies {
			j := 1 - i
			dir := collision.SeekDirection(bodies[i].Position, bodies[j].Position)
			others := []collision.Body{bodies[j]}
			res := r.Resolve(collision.Mover{Position: bodies[i].Position, Radius: 20, Speed: 120}, dir, dt, others)
			bodies[i].Position = res.Position
			bodies[j].Position = others[0].Position

			d := bodies[0].Position.Dist(bodies[1].Position)
			minDist = math.Min(minDist, d)
			require.GreaterOrEqual(t, d, 16.0-1e-9, "step %d", step)
		}
	}
	assert.Less(t, minDist, 20.0, "actors should have met")
}

func TestResolverNeverEntersSolid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "obstacles")
		obstacles := make([]collision.Obstacle, n)
		for i := range obstacles {
			angle := rapid.Float64Range(0, 2*math.Pi).Draw(t, "angle")
			dist := rapid.Float64Range(100, 300).Draw(t, "dist")
			obstacles[i] = collision.Obstacle{
				Position: common.FromAngle(angle).Mul(dist),
				Radius:   rapid.Float64Range(5, 60).Draw(t, "radius"),
				Solid:    true,
			}
		}
		g := collision.NewSpaceGeometry(obstacles...)
		r := collision.NewResolver(g)

		m := collision.Mover{
			Radius: rapid.Float64Range(4, 30).Draw(t, "mover_radius"),
			Speed:  rapid.Float64Range(10, 600).Draw(t, "speed"),
		}
		dir := common.FromAngle(rapid.Float64Range(0, 2*math.Pi).Draw(t, "heading"))
		steps := rapid.IntRange(1, 120).Draw(t, "steps")

		for i := 0; i < steps; i++ {
			res := r.Resolve(m, dir, 1.0/30, nil)
			m.Position = res.Position
			for _, o := range obstacles {
				if collision.Overlaps(m.Position, m.Radius, o.Position, o.Radius) {
					t.Fatalf("mover at %v overlaps obstacle %+v after step %d", m.Position, o, i)
				}
			}
		}
	})
}

func TestSpaceGeometryQuery(t *testing.T) {
	near := collision.Obstacle{Position: common.V(40, 0), Radius: 20, Solid: true}
	far := collision.Obstacle{Position: common.V(400, 0), Radius: 20, Solid: true}
	g := collision.NewSpaceGeometry(near, far, collision.Obstacle{Radius: 0})

	assert.Len(t, g.Obstacles(), 2, "zero-size obstacles are dropped")
	got := g.Query(0, 0, 40)
	require.Len(t, got, 1)
	assert.Equal(t, near, got[0])
	assert.True(t, collision.SolidAt(g, common.V(35, 0), 20))
	assert.False(t, collision.SolidAt(g, common.V(-35, 0), 20))
}

func TestSpaceGeometryQueryIsBoxSuperset(t *testing.T) {
	corner := collision.Obstacle{Position: common.V(38, 38), Radius: 10, Solid: true}
	g := collision.NewSpaceGeometry(corner)

	got := g.Query(0, 0, 40)
	require.Len(t, got, 1, "box corners are reported")
	assert.Equal(t, corner, got[0])
	assert.False(t, collision.SolidAt(g, common.V(0, 0), 40), "overlap test still filters them")
	assert.Empty(t, g.Query(-100, -100, 10))
}
