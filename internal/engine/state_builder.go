package engine

import (
	"mirkwall-server/internal/domain"
	"mirkwall-server/pkg/api"
)

// buildResponse создает "снимок" мира, видимого игроку: исследованные
// тайлы, видимые сущности и сообщения текущего хода.
func (s *Session) buildResponse(respType string) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:      respType,
		Turn:      s.turn,
		GameState: s.State.String(),
		Grid: &api.GridMeta{
			Width:  s.World.Width,
			Height: s.World.Height,
		},
	}

	// 1. Карта: только исследованные тайлы (туман войны)
	for y := 0; y < s.World.Height; y++ {
		for x := 0; x < s.World.Width; x++ {
			tile := s.World.Map[y][x]
			if !tile.IsExplored {
				continue
			}
			resp.Map = append(resp.Map, api.TileView{
				X: x, Y: y,
				IsWall:     tile.IsWall,
				IsVisible:  tile.IsVisible,
				IsExplored: true,
			})
		}
	}

	// 2. Сущности: себя видим всегда, остальных - в поле зрения.
	// Останки мобов тоже отображаются, пока клетка видна.
	resp.Entities = append(resp.Entities, toEntityView(s.Player))
	for _, m := range s.Mobs.Snapshot() {
		if s.World.IsVisible(m.Pos.X, m.Pos.Y) {
			resp.Entities = append(resp.Entities, toEntityView(m))
		}
	}

	// 3. Сообщения, накопленные за ход
	resp.Logs = toLogView(s.Log.FlushTurn())

	return resp
}

func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   e.ID,
		Type: e.Type,
		Name: e.Name,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y

	if e.Render != nil {
		view.Render.Symbol = string([]byte{e.Render.Glyph.Char()})
		view.Render.Color = e.Render.Glyph.HexColor()
	}

	if e.Combat != nil {
		view.Stats = &api.StatsView{
			HP:     e.Combat.HP,
			MaxHP:  e.Combat.MaxHP,
			Atk:    e.Combat.Atk,
			IsDead: e.Combat.IsDead,
		}
	}

	return view
}

func toLogView(entries []domain.LogEntry) []api.LogEntry {
	out := make([]api.LogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.LogEntry{
			ID:        e.ID,
			Text:      e.Text,
			Type:      e.Style,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
