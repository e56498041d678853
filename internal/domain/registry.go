package domain

// MobRegistry — упорядоченная коллекция мобов уровня. Порядок значим:
// мертвые мобы переносятся в начало, чтобы обрабатываться и
// отрисовываться под живыми.
type MobRegistry struct {
	mobs []*Entity
}

func NewMobRegistry() *MobRegistry {
	return &MobRegistry{mobs: make([]*Entity, 0)}
}

func (r *MobRegistry) Add(m *Entity) {
	r.mobs = append(r.mobs, m)
}

func (r *MobRegistry) Len() int {
	return len(r.mobs)
}

// At возвращает моба по индексу (порядок реестра).
func (r *MobRegistry) At(i int) *Entity {
	return r.mobs[i]
}

// Snapshot возвращает копию текущего порядка. Проход хода идет по
// снимку: SendToFront во время прохода не ломает итерацию.
func (r *MobRegistry) Snapshot() []*Entity {
	out := make([]*Entity, len(r.mobs))
	copy(out, r.mobs)
	return out
}

// SendToFront переносит моба в начало реестра, сохраняя относительный
// порядок остальных. Незнакомый моб игнорируется.
func (r *MobRegistry) SendToFront(m *Entity) {
	for i, other := range r.mobs {
		if other != m {
			continue
		}
		copy(r.mobs[1:i+1], r.mobs[:i])
		r.mobs[0] = m
		return
	}
}

// Live возвращает число живых мобов.
func (r *MobRegistry) Live() int {
	n := 0
	for _, m := range r.mobs {
		if m.Combat != nil && !m.Combat.IsDead {
			n++
		}
	}
	return n
}
