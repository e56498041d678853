package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"mirkwall-server/internal/core/types"
	"mirkwall-server/internal/domain"
	"mirkwall-server/pkg/logger"
)

// AttackResult — исход одного обмена ударами.
type AttackResult struct {
	Damage     int
	TargetDied bool
	NoTarget   bool // у цели нет боевого компонента - урон невозможен
}

// ResolveAttack разыгрывает один удар attacker по target.
// Урон — равномерное целое из [0, Atk] включительно; ноль трактуется
// вызывающим как промах. Смерть цели применяет локальные эффекты
// (MarkDead); перестановка в реестре и текст сообщений - забота движка.
func ResolveAttack(attacker, target *domain.Entity, rng *rand.Rand) AttackResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	// --- Проверка граничных условий ---

	if target.Combat == nil {
		combatLogger.Warn("Attack ignored: target has no CombatComponent.")
		return AttackResult{NoTarget: true}
	}
	if target.Combat.IsDead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return AttackResult{}
	}

	// --- Бросок урона ---

	atk := 0
	if attacker.Combat != nil {
		atk = attacker.Combat.Atk
	}

	dmg := rng.Intn(atk + 1)

	hpBefore := target.Combat.HP
	died := target.Combat.TakeDamage(dmg)

	combatLogger.WithFields(logrus.Fields{
		"damage":      dmg,
		"hp_before":   hpBefore,
		"hp_after":    target.Combat.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	if died {
		MarkDead(target)
	}

	return AttackResult{Damage: dmg, TargetDied: died}
}

// MarkDead применяет локальные эффекты смерти сущности: маркер останков
// на карте, снятие твердости (по останкам можно ходить) и терминальное
// состояние ИИ. Идемпотентно.
func MarkDead(e *domain.Entity) {
	if e.Render != nil {
		marker := byte(domain.CorpseCharMob)
		if e.Type == domain.EntityTypePlayer {
			marker = domain.CorpseCharPlayer
		}
		e.Render.Glyph = types.MakeGlyph(domain.ColorCorpse, marker)
	}

	e.Solid = false

	if e.AI != nil {
		e.AI.State = domain.StateDead
	}
}
