package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"mirkwall-server/internal/domain"
	"mirkwall-server/pkg/logger"
)

// TransitionFacts — факты мира, от которых зависит смена состояния моба.
type TransitionFacts struct {
	InSight bool // клетка моба в текущем поле зрения игрока
	Healthy bool // hp не ниже 40% максимума
}

// NextState вычисляет следующее состояние моба по таблице переходов:
//
//	HOLD  -> CHASE: видим и здоров
//	HOLD  -> RUN:   видим и ранен (бросок против morale)
//	CHASE -> HOLD:  не видим
//	CHASE -> RUN:   видим и ранен (бросок против morale)
//	RUN   -> HOLD:  не видим
//	RUN   -> CHASE: видим и здоров
//
// Ячейки строки проверяются в фиксированном порядке колонок
// (HOLD, CHASE, RUN); первая истинная определяет результат. Бросок на
// бегство делается только когда проверяется соответствующая ячейка.
// StateDead сюда не попадает: мертвый моб отсекается до вызова.
func NextState(cur domain.AIState, f TransitionFacts, morale int, rng *rand.Rand) (domain.AIState, bool) {
	switch cur {
	case domain.StateHold:
		if f.InSight && f.Healthy {
			return domain.StateChase, true
		}
		if fleeCheck(f, morale, rng) {
			return domain.StateRun, true
		}

	case domain.StateChase:
		if !f.InSight {
			return domain.StateHold, true
		}
		if fleeCheck(f, morale, rng) {
			return domain.StateRun, true
		}

	case domain.StateRun:
		if !f.InSight {
			return domain.StateHold, true
		}
		if f.InSight && f.Healthy {
			return domain.StateChase, true
		}
	}

	return cur, false
}

// fleeCheck — решение о бегстве. Равномерный бросок из [0,100] должен
// превысить morale; неудачный бросок дает false независимо от
// видимости и здоровья.
func fleeCheck(f TransitionFacts, morale int, rng *rand.Rand) bool {
	if rng.Intn(101) <= morale {
		return false
	}
	return f.InSight && !f.Healthy
}

// NeighborOffsets — порядок обхода соседних клеток. Порядок фиксирован:
// при равной дистанции выигрывает первый найденный ход.
var NeighborOffsets = [4]domain.Position{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// ChaseStep выбирает соседнюю клетку, строго сокращающую евклидово
// расстояние до цели. ok=false — улучшающего хода нет, моб стоит.
func ChaseStep(mob *domain.Entity, target domain.Position, w *domain.GameWorld, entities []*domain.Entity) (dx, dy int, ok bool) {
	best := mob.Pos.DistanceTo(target)

	for _, off := range NeighborOffsets {
		if !checkMove(mob, off.X, off.Y, w, entities) {
			continue
		}

		dist := mob.Pos.Shift(off.X, off.Y).DistanceTo(target)
		if dist < best {
			best = dist
			dx, dy, ok = off.X, off.Y, true
		}
	}

	if ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"mob":       mob.Name,
			"step":      [2]int{dx, dy},
		}).Debug("Chase step selected.")
	}
	return dx, dy, ok
}

// RunStep симметричен ChaseStep, но строго увеличивает расстояние
// до цели.
func RunStep(mob *domain.Entity, target domain.Position, w *domain.GameWorld, entities []*domain.Entity) (dx, dy int, ok bool) {
	best := mob.Pos.DistanceTo(target)

	for _, off := range NeighborOffsets {
		if !checkMove(mob, off.X, off.Y, w, entities) {
			continue
		}

		dist := mob.Pos.Shift(off.X, off.Y).DistanceTo(target)
		if dist > best {
			best = dist
			dx, dy, ok = off.X, off.Y, true
		}
	}

	return dx, dy, ok
}
