package domain

import "testing"

func mobNamed(name string) *Entity {
	return &Entity{
		ID:     name,
		Type:   EntityTypeMob,
		Name:   name,
		Solid:  true,
		Combat: &CombatComponent{HP: 10, MaxHP: 10},
		AI:     &AIComponent{State: StateHold},
	}
}

func TestMobRegistry_SendToFront(t *testing.T) {
	r := NewMobRegistry()
	a, b, c, d := mobNamed("a"), mobNamed("b"), mobNamed("c"), mobNamed("d")
	r.Add(a)
	r.Add(b)
	r.Add(c)
	r.Add(d)

	r.SendToFront(c)

	want := []*Entity{c, a, b, d}
	for i, m := range want {
		if r.At(i) != m {
			t.Errorf("index %d: got %s, want %s", i, r.At(i).Name, m.Name)
		}
	}

	// Повторный перенос того же моба порядок не меняет
	r.SendToFront(c)
	if r.At(0) != c || r.At(1) != a {
		t.Error("repeated SendToFront must be idempotent")
	}

	// Незнакомый моб игнорируется
	r.SendToFront(mobNamed("stranger"))
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
}

func TestMobRegistry_SnapshotIsolation(t *testing.T) {
	r := NewMobRegistry()
	a, b := mobNamed("a"), mobNamed("b")
	r.Add(a)
	r.Add(b)

	snap := r.Snapshot()
	r.SendToFront(b)

	// Снимок хранит порядок на момент вызова
	if snap[0] != a || snap[1] != b {
		t.Error("snapshot order must not change after SendToFront")
	}
	if r.At(0) != b {
		t.Error("registry itself must be reordered")
	}
}

func TestMobRegistry_Live(t *testing.T) {
	r := NewMobRegistry()
	a, b := mobNamed("a"), mobNamed("b")
	r.Add(a)
	r.Add(b)

	if r.Live() != 2 {
		t.Errorf("Live() = %d, want 2", r.Live())
	}

	b.Combat.TakeDamage(999)
	if r.Live() != 1 {
		t.Errorf("Live() after death = %d, want 1", r.Live())
	}
}
