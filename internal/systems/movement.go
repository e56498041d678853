package systems

import (
	"mirkwall-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY int
	HasMoved   bool
	BlockedBy  *domain.Entity // Если уперлись в твердую сущность
	IsWall     bool           // Если уперлись в стену или границу
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(e *domain.Entity, dx, dy int, w *domain.GameWorld, entities []*domain.Entity) MovementResult {
	targetPos := e.Pos.Shift(dx, dy)

	res := MovementResult{NewX: targetPos.X, NewY: targetPos.Y}

	// 1. Границы и стены
	if w.IsBlocked(targetPos.X, targetPos.Y) {
		res.IsWall = true
		return res
	}

	// 2. Твердые сущности. Останки (Solid=false) проходимы.
	for _, other := range entities {
		if other == e || !other.Solid {
			continue
		}
		if other.Pos == targetPos {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}

// ApplyMove двигает сущность, если клетка свободна. Запрещенный ход -
// тихий no-op, не ошибка.
func ApplyMove(e *domain.Entity, dx, dy int, w *domain.GameWorld, entities []*domain.Entity) bool {
	res := CalculateMove(e, dx, dy, w, entities)
	if res.HasMoved {
		e.Pos.X = res.NewX
		e.Pos.Y = res.NewY
	}
	return res.HasMoved
}

func checkMove(e *domain.Entity, dx, dy int, w *domain.GameWorld, entities []*domain.Entity) bool {
	return CalculateMove(e, dx, dy, w, entities).HasMoved
}
