package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Tile struct {
	IsWall     bool `json:"isWall"`
	IsVisible  bool `json:"isVisible"`
	IsExplored bool `json:"isExplored"`
}

// GameWorld — карта уровня. Отвечает на два вопроса ядра:
// "заблокирована ли клетка" и "видна ли клетка игроку".
type GameWorld struct {
	Map    [][]Tile `json:"map"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}
