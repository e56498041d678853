package dungeon

import (
	"fmt"

	"mirkwall-server/internal/domain"
)

// Level - собранный уровень: карта, стартовая позиция игрока и мобы.
type Level struct {
	World     *domain.GameWorld
	PlayerPos domain.Position
	Mobs      []*domain.Entity
}

// DefaultLevel - статичная карта подземелья. Легенда:
//
//	'#' стена, '.' пол, '@' старт игрока,
//	символы из MobTemplates - точки спавна мобов.
var DefaultLevel = []string{
	"##############################",
	"#............#...............#",
	"#....@.......#.......s.......#",
	"#............#...............#",
	"#....###..####...............#",
	"#....#.......................#",
	"#....#...#####################",
	"#....#...#...................#",
	"#........#.........S.........#",
	"#........#...................#",
	"#........#.......#####.......#",
	"#................#...#...s...#",
	"#................#...........#",
	"##############################",
}

// BuildLevel разбирает текстовую карту в готовый уровень.
// Карта должна быть прямоугольной и содержать ровно один '@'.
func BuildLevel(rows []string) (*Level, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("level map is empty")
	}

	height := len(rows)
	width := len(rows[0])

	world := domain.NewGameWorld(width, height)
	lvl := &Level{World: world, PlayerPos: domain.Position{X: -1, Y: -1}}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("level row %d has width %d, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			ch := row[x]
			pos := domain.Position{X: x, Y: y}

			switch {
			case ch == '#':
				continue // карта инициализирована стенами

			case ch == '.':
				world.Map[y][x].IsWall = false

			case ch == '@':
				if lvl.PlayerPos.X >= 0 {
					return nil, fmt.Errorf("duplicate player start at (%d,%d)", x, y)
				}
				world.Map[y][x].IsWall = false
				lvl.PlayerPos = pos

			default:
				tpl, ok := MobTemplates[ch]
				if !ok {
					return nil, fmt.Errorf("unknown map symbol %q at (%d,%d)", ch, x, y)
				}
				world.Map[y][x].IsWall = false
				lvl.Mobs = append(lvl.Mobs, tpl.Spawn(pos))
			}
		}
	}

	if lvl.PlayerPos.X < 0 {
		return nil, fmt.Errorf("level map has no player start")
	}
	return lvl, nil
}
