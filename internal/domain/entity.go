package domain

import (
	"mirkwall-server/internal/core/types"
)

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	Glyph types.Glyph `json:"glyph"`
}

// CombatComponent - Боевые характеристики
type CombatComponent struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	Atk    int  `json:"atk"` // верхняя граница броска урона
	IsDead bool `json:"isDead"`
}

// AIComponent - Поведение враждебного моба
type AIComponent struct {
	// Morale [0..100]: вероятностный порог, удерживающий раненого моба
	// в бою. Чем выше, тем реже он сбегает.
	Morale int     `json:"morale"`
	State  AIState `json:"state"`
}

// --- СУЩНОСТЬ ---

// Entity — позиционная запись с опциональными компонентами.
// Если компонент nil - значит свойство отсутствует: сущность без Combat
// не участвует в бою, без AI - не ходит сама.
type Entity struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Pos Position `json:"pos"`

	// Solid блокирует движение других сущностей через эту клетку.
	// Снимается при смерти: по останкам можно ходить.
	Solid bool `json:"solid"`

	Render *RenderComponent `json:"render,omitempty"`
	Combat *CombatComponent `json:"combat,omitempty"`
	AI     *AIComponent     `json:"ai,omitempty"`
}
