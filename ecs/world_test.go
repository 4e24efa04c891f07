package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/hordecore/archetype"
	"github.com/milk9111/hordecore/common"
	"github.com/milk9111/hordecore/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

type arena struct {
	w      *World
	player Entity
	enemy  Entity
	bolt   Entity
}

// newArena builds a player, one enemy and one projectile, each with the
// components the systems query them by.
func newArena(t *testing.T) arena {
	t.Helper()
	w := NewWorld()
	a := arena{w: w, player: CreateEntity(w), enemy: CreateEntity(w), bolt: CreateEntity(w)}
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(Add(w, a.player, component.TransformComponent.Kind(), &component.Transform{}))
	must(Add(w, a.player, component.HealthComponent.Kind(), component.NewHealth(100)))
	must(Add(w, a.player, component.PlayerComponent.Kind(), &component.Player{}))

	must(Add(w, a.enemy, component.TransformComponent.Kind(), &component.Transform{Position: common.V(30, 0)}))
	must(Add(w, a.enemy, component.HealthComponent.Kind(), component.NewHealth(10)))
	must(Add(w, a.enemy, component.EnemyComponent.Kind(), component.NewEnemy(archetype.EnemyProfile{Tag: "basic"}, 5)))
	must(Add(w, a.enemy, component.AIStateComponent.Kind(), &component.AIState{}))

	must(Add(w, a.bolt, component.TransformComponent.Kind(), &component.Transform{Position: common.V(5, 0)}))
	must(Add(w, a.bolt, component.ProjectileComponent.Kind(), &component.Projectile{Damage: 3}))
	return a
}

func TestEntityLifecycle(t *testing.T) {
	a := newArena(t)
	if got := len(Entities(a.w)); got != 3 {
		t.Fatalf("expected 3 entities, got %d", got)
	}
	if !DestroyEntity(a.w, a.bolt) {
		t.Fatal("DestroyEntity should succeed for a live entity")
	}
	if IsAlive(a.w, a.bolt) {
		t.Fatal("destroyed entity reported alive")
	}
	if Has(a.w, a.bolt, component.TransformComponent.Kind()) {
		t.Fatal("destroyed entity kept its transform")
	}
	if got := Count(a.w, component.TransformComponent.Kind()); got != 2 {
		t.Fatalf("expected 2 transforms left, got %d", got)
	}
}

func TestForEachIntersections(t *testing.T) {
	tests := []struct {
		name string
		run  func(w *World) []Entity
		want func(a arena) []Entity
	}{
		{
			name: "transforms",
			run: func(w *World) (out []Entity) {
				ForEach(w, component.TransformComponent.Kind(), func(e Entity, _ *component.Transform) { out = append(out, e) })
				return out
			},
			want: func(a arena) []Entity { return []Entity{a.player, a.enemy, a.bolt} },
		},
		{
			name: "damageable",
			run: func(w *World) (out []Entity) {
				ForEach2(w, component.TransformComponent.Kind(), component.HealthComponent.Kind(),
					func(e Entity, _ *component.Transform, _ *component.Health) { out = append(out, e) })
				return out
			},
			want: func(a arena) []Entity { return []Entity{a.player, a.enemy} },
		},
		{
			name: "enemies",
			run: func(w *World) (out []Entity) {
				ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
					func(e Entity, _ *component.Enemy, _ *component.Transform, _ *component.Health) { out = append(out, e) })
				return out
			},
			want: func(a arena) []Entity { return []Entity{a.enemy} },
		},
		{
			name: "enemy_brains",
			run: func(w *World) (out []Entity) {
				ForEach4(w, component.EnemyComponent.Kind(), component.AIStateComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
					func(e Entity, _ *component.Enemy, _ *component.AIState, _ *component.Transform, _ *component.Health) {
						out = append(out, e)
					})
				return out
			},
			want: func(a arena) []Entity { return []Entity{a.enemy} },
		},
		{
			name: "missing_store",
			run: func(w *World) (out []Entity) {
				ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
					func(e Entity, _ *component.Pickup, _ *component.Transform) { out = append(out, e) })
				return out
			},
			want: func(a arena) []Entity { return nil },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newArena(t)
			got := tc.run(a.w)
			want := tc.want(a)
			if len(got) != len(want) {
				t.Fatalf("expected %v, got %v", want, got)
			}
			seen := make(map[Entity]bool, len(got))
			for _, e := range got {
				seen[e] = true
			}
			for _, e := range want {
				if !seen[e] {
					t.Fatalf("expected %v in %v", e, got)
				}
			}
		})
	}
}

func TestForEachSkipsDeadEnemies(t *testing.T) {
	a := newArena(t)
	DestroyEntity(a.w, a.enemy)

	visited := 0
	ForEach3(a.w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(Entity, *component.Enemy, *component.Transform, *component.Health) { visited++ })
	if visited != 0 {
		t.Fatalf("expected no enemies after destroy, visited %d", visited)
	}
}

func TestComponentNames(t *testing.T) {
	if got := component.EnemyComponent.Kind().Name(); got != "enemy" {
		t.Fatalf("expected enemy, got %q", got)
	}
	if got := component.NewComponentKind[int]().Name(); got != "int" {
		t.Fatalf("expected ad hoc kind named int, got %q", got)
	}
	if got := component.Name(0); got != "" {
		t.Fatalf("expected empty name for the zero id, got %q", got)
	}
}

func TestStoreSizes(t *testing.T) {
	a := newArena(t)
	DestroyEntity(a.w, a.bolt)

	got := StoreSizes(a.w)
	want := []StoreSize{
		{"ai_state", 1}, {"enemy", 1}, {"health", 2}, {"player", 1}, {"transform", 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("store %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSchedulerTick(t *testing.T) {
	w := NewWorld()
	var order []string
	var seen []float64
	sched := NewScheduler(
		SystemFunc(func(w *World) {
			order = append(order, "first")
			seen = append(seen, w.Clock().Now)
		}),
		nil,
		SystemFunc(func(w *World) {
			order = append(order, "second")
			w.Events().Emit("tick", 0, w.Clock().Frame)
		}),
	)
	if sched.Len() != 2 {
		t.Fatalf("nil systems should be dropped, got %d", sched.Len())
	}

	events := sched.Tick(w, 0.5)
	events = append(events, sched.Tick(w, 0.5)...)

	if len(order) != 4 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected order %v", order)
	}
	if seen[0] != 0 || seen[1] != 0.5 {
		t.Fatalf("systems should see the tick start time, got %v", seen)
	}
	if len(events) != 2 || events[1].Data != uint64(1) {
		t.Fatalf("unexpected events %v", events)
	}
	if w.Events().Len() != 0 || w.Clock().Now != 1 {
		t.Fatalf("tick should drain events and advance the clock, got %+v", w.Clock())
	}
}

func TestStaleHandleRejectedAfterRecycle(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}
	if DestroyEntity(w, old) {
		t.Fatal("second destroy of the same handle should fail")
	}

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be recycled, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatal("recycled handle must carry a new generation")
	}
	if Has(w, fresh, k) {
		t.Fatal("recycled entity must not inherit components")
	}
	if err := Add(w, old, k, intPtr(2)); !errors.Is(err, ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	k := component.NewComponentKind[int]()

	tests := []struct {
		name string
		err  error
		run  func() error
	}{
		{"nil_value", ErrNilComponent, func() error { return Add(w, e, k, nil) }},
		{"zero_kind", ErrInvalidComponentKind, func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }},
		{"dead_entity", ErrEntityNotAlive, func() error { return Add(w, Entity(0), k, intPtr(1)) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, k, func(e Entity, v *int) {
		visited++
		if *v == 0 {
			DestroyEntity(w, ents[3])
		}
	})
	if visited != 3 {
		t.Fatalf("expected destroyed entity to be skipped, visited %d", visited)
	}
	if Count(w, k) != 3 {
		t.Fatalf("expected 3 components left, got %d", Count(w, k))
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("b"))

	got := Query(w, ka, kb)
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2, got %v", got)
	}
	if Query(w, ka, component.NewComponentKind[float64]()) != nil {
		t.Fatal("expected nil when a store does not exist")
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	q := w.Events()
	q.Emit("a", 0, nil)
	q.Emit("b", 0, 1)
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Len())
	}
	out := q.Drain()
	if len(out) != 2 || out[0].Type != "a" || out[1].Type != "b" {
		t.Fatalf("unexpected drain order: %v", out)
	}
	if q.Drain() != nil {
		t.Fatal("queue should be empty after drain")
	}
}

func TestClockTicks(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		w.BeginTick(0.25)
		if got := w.Clock().Now; got != float64(i)*0.25 {
			t.Fatalf("tick %d: expected now %v during tick, got %v", i, float64(i)*0.25, got)
		}
		w.EndTick()
	}
	if c := w.Clock(); c.Now != 1 || c.Frame != 4 {
		t.Fatalf("unexpected clock after 4 ticks: %+v", c)
	}
}
