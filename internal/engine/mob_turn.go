package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"mirkwall-server/internal/domain"
	"mirkwall-server/internal/systems"
	"mirkwall-server/pkg/logger"
)

// runMobPass дает ход каждому мобу уровня. Проход идет по снимку
// реестра: перестановки при смерти не ломают порядок итерации.
func (s *Session) runMobPass() {
	for _, mob := range s.Mobs.Snapshot() {
		if s.State == GameDead {
			return
		}
		if mob.Combat == nil || mob.Combat.IsDead {
			continue
		}
		s.mobAct(mob)
	}
}

// mobAct - один ход одного моба: смена состояния по таблице переходов,
// затем действие в текущем состоянии.
func (s *Session) mobAct(mob *domain.Entity) {
	facts := systems.TransitionFacts{
		InSight: s.World.IsVisible(mob.Pos.X, mob.Pos.Y),
		Healthy: mob.Combat.Healthy(),
	}

	next, changed := systems.NextState(mob.AI.State, facts, mob.AI.Morale, s.Rng)
	if changed {
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"mob":       mob.Name,
			"from":      mob.AI.State.String(),
			"to":        next.String(),
		}).Debug("Mob state transition.")

		mob.AI.State = next

		switch next {
		case domain.StateChase:
			s.Log.Add(fmt.Sprintf("%s sees you!", mob.Name), domain.MsgBehavior)
		case domain.StateRun:
			s.Log.Add(fmt.Sprintf("%s runs away!", mob.Name), domain.MsgBehavior)
		}
	}

	switch mob.AI.State {
	case domain.StateChase:
		s.mobChase(mob)
	case domain.StateRun:
		s.mobRun(mob)
	}
	// HOLD: моб стоит на месте
}

// mobChase: игрок на соседней клетке - удар, иначе шаг, сокращающий
// дистанцию. Диагональ соседством не считается: и ходы, и удары
// идут по четырем направлениям.
func (s *Session) mobChase(mob *domain.Entity) {
	if s.playerAdjacent(mob) {
		res := systems.ResolveAttack(mob, s.Player, s.Rng)

		if res.Damage > 0 {
			s.Log.Add(fmt.Sprintf("%s attacks you for %d damage!", mob.Name, res.Damage), domain.MsgCombat)
		} else {
			s.Log.Add(fmt.Sprintf("%s missed!", mob.Name), domain.MsgCombat)
		}

		if res.TargetDied {
			s.Log.Add(fmt.Sprintf("%s killed you!", mob.Name), domain.MsgDeath)
			s.State = GameDead
		}
		return
	}

	if dx, dy, ok := systems.ChaseStep(mob, s.Player.Pos, s.World, s.collisionList()); ok {
		systems.ApplyMove(mob, dx, dy, s.World, s.collisionList())
	}
}

// playerAdjacent — стоит ли живой игрок на одной из четырех соседних
// клеток моба.
func (s *Session) playerAdjacent(mob *domain.Entity) bool {
	if s.Player.Combat.IsDead {
		return false
	}
	for _, off := range systems.NeighborOffsets {
		if mob.Pos.Shift(off.X, off.Y) == s.Player.Pos {
			return true
		}
	}
	return false
}

// mobRun: шаг, увеличивающий дистанцию до игрока. Зажатый моб стоит.
func (s *Session) mobRun(mob *domain.Entity) {
	if dx, dy, ok := systems.RunStep(mob, s.Player.Pos, s.World, s.collisionList()); ok {
		systems.ApplyMove(mob, dx, dy, s.World, s.collisionList())
	}
}
