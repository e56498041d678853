package systems

import (
	"os"
	"testing"

	"mirkwall-server/internal/core/types"
	"mirkwall-server/internal/domain"
	"mirkwall-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// createTestWorld builds an open floor of the given size surrounded by
// the implicit out-of-bounds border.
func createTestWorld(width, height int) *domain.GameWorld {
	w := domain.NewGameWorld(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w.Map[y][x].IsWall = false
		}
	}
	return w
}

func testMob(name string, x, y int) *domain.Entity {
	return &domain.Entity{
		ID:    name,
		Type:  domain.EntityTypeMob,
		Name:  name,
		Pos:   domain.Position{X: x, Y: y},
		Solid: true,
		Render: &domain.RenderComponent{
			Glyph: types.MakeGlyph(domain.ColorMob, 's'),
		},
		Combat: &domain.CombatComponent{HP: 200, MaxHP: 200, Atk: 15},
		AI:     &domain.AIComponent{Morale: 50, State: domain.StateHold},
	}
}

func testPlayer(x, y int) *domain.Entity {
	return &domain.Entity{
		ID:    "player",
		Type:  domain.EntityTypePlayer,
		Name:  "Hero",
		Pos:   domain.Position{X: x, Y: y},
		Solid: true,
		Render: &domain.RenderComponent{
			Glyph: types.MakeGlyph(domain.ColorPlayer, '@'),
		},
		Combat: &domain.CombatComponent{HP: 300, MaxHP: 300, Atk: 30},
	}
}
