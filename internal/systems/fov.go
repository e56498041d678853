package systems

import (
	"github.com/sirupsen/logrus"

	"mirkwall-server/internal/domain"
	"mirkwall-server/pkg/logger"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// RefreshFOV пересчитывает поле зрения от позиции наблюдателя и
// записывает результат в тайлы мира. Увиденные клетки помечаются
// исследованными (туман войны).
func RefreshFOV(w *domain.GameWorld, pos domain.Position, radius int) {
	visible := ComputeVisibleTiles(w, pos, radius)

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			tile := &w.Map[y][x]
			tile.IsVisible = visible[w.GetIndex(x, y)]
			if tile.IsVisible {
				tile.IsExplored = true
			}
		}
	}
}

// ComputeVisibleTiles возвращает мапу индексов {index: true} клеток,
// видимых из pos в пределах radius. Рекурсивный shadowcasting по
// 8 октантам.
func ComputeVisibleTiles(w *domain.GameWorld, pos domain.Position, radius int) map[int]bool {
	visibleMap := make(map[int]bool)

	if radius <= 0 {
		logger.Log.WithFields(logrus.Fields{
			"component":    "fov_system",
			"observer_pos": pos,
		}).Warn("FOV calculation skipped for blind observer (radius <= 0).")
		return visibleMap
	}

	// Центр всегда виден
	visibleMap[w.GetIndex(pos.X, pos.Y)] = true

	for i := 0; i < 8; i++ {
		castLight(w, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visibleMap)
	}

	return visibleMap
}

func castLight(w *domain.GameWorld, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visibleMap map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Наклоны (slopes) краев клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат октанта в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if X >= 0 && Y >= 0 && X < w.Width && Y < w.Height {
				if float64(dx*dx+dy*dy) < radiusSq {
					visibleMap[w.GetIndex(X, Y)] = true
				}
			}

			if blocked {
				// Идем вдоль стены
				if isBlocking(w, X, Y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась
				blocked = false
				start = newStart
			} else {
				// Шли по пустоте и наткнулись на стену
				if isBlocking(w, X, Y) && j < radius {
					blocked = true
					castLight(w, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visibleMap)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// isBlocking проверяет, блокирует ли клетка взгляд.
// Выход за границы считается блокирующим.
func isBlocking(w *domain.GameWorld, x, y int) bool {
	if x < 0 || y < 0 || x >= w.Width || y >= w.Height {
		return true
	}
	return w.Map[y][x].IsWall
}
