package dungeon

import (
	"mirkwall-server/internal/core/types"
	"mirkwall-server/internal/domain"
	"mirkwall-server/pkg/utils"
)

// MobTemplate определяет шаблон для создания моба
type MobTemplate struct {
	Name   string
	Char   byte
	Color  uint32
	HP     int
	Atk    int
	Morale int
}

// Spawn создает моба из шаблона на заданной позиции.
// Каждый экземпляр получает свежий уникальный ID.
func (t MobTemplate) Spawn(pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:    "e_" + utils.GenerateID(),
		Type:  domain.EntityTypeMob,
		Name:  t.Name,
		Pos:   pos,
		Solid: true,
		Render: &domain.RenderComponent{
			Glyph: types.MakeGlyph(t.Color, t.Char),
		},
		Combat: &domain.CombatComponent{
			HP:    t.HP,
			MaxHP: t.HP,
			Atk:   t.Atk,
		},
		AI: &domain.AIComponent{
			Morale: t.Morale,
			State:  domain.StateHold,
		},
	}
}

// --- ВРАГИ ---

var Spider = MobTemplate{
	Name:   "spider",
	Char:   's',
	Color:  domain.ColorMob,
	HP:     200,
	Atk:    15,
	Morale: 50,
}

var Skeleton = MobTemplate{
	Name:   "skeleton",
	Char:   'S',
	Color:  domain.ColorMob,
	HP:     235,
	Atk:    20,
	Morale: 100,
}

// MobTemplates сопоставляет символ уровня с шаблоном моба
var MobTemplates = map[byte]MobTemplate{
	's': Spider,
	'S': Skeleton,
}

// CreatePlayer создает сущность игрока на заданной позиции.
func CreatePlayer(pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:    "player",
		Type:  domain.EntityTypePlayer,
		Name:  "you",
		Pos:   pos,
		Solid: true,
		Render: &domain.RenderComponent{
			Glyph: types.MakeGlyph(domain.ColorPlayer, '@'),
		},
		Combat: &domain.CombatComponent{
			HP:    300,
			MaxHP: 300,
			Atk:   30,
		},
	}
}
