package domain

// NewGameWorld создает мир заданного размера, заполненный стенами.
// Проходимые клетки вырезает строитель уровня.
func NewGameWorld(width, height int) *GameWorld {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x].IsWall = true
		}
	}
	return &GameWorld{Map: tiles, Width: width, Height: height}
}

func (w *GameWorld) GetIndex(x, y int) int {
	return y*w.Width + x
}

func (w *GameWorld) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// IsBlocked — запрос проходимости клетки: выход за границы и стены
// непроходимы. Твердые сущности проверяются отдельно, в системе движения.
func (w *GameWorld) IsBlocked(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}
	return w.Map[y][x].IsWall
}

// IsVisible — находится ли клетка в текущем поле зрения игрока.
// За границами карты ничего не видно.
func (w *GameWorld) IsVisible(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	return w.Map[y][x].IsVisible
}
