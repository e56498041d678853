package systems

import (
	"testing"

	"mirkwall-server/internal/domain"
)

func TestCalculateMove(t *testing.T) {
	world := createTestWorld(10, 10)
	world.Map[5][6].IsWall = true

	mob := testMob("walker", 5, 5)
	blocker := testMob("blocker", 5, 6)
	entities := []*domain.Entity{mob, blocker}

	t.Run("open tile", func(t *testing.T) {
		res := CalculateMove(mob, 0, -1, world, entities)
		if !res.HasMoved {
			t.Error("move to open tile should succeed")
		}
		if res.NewX != 5 || res.NewY != 4 {
			t.Errorf("destination = (%d,%d), want (5,4)", res.NewX, res.NewY)
		}
	})

	t.Run("wall blocks", func(t *testing.T) {
		res := CalculateMove(mob, 1, 0, world, entities)
		if res.HasMoved || !res.IsWall {
			t.Error("wall tile should report IsWall and no movement")
		}
	})

	t.Run("out of bounds blocks", func(t *testing.T) {
		edge := testMob("edge", 0, 0)
		res := CalculateMove(edge, -1, 0, world, entities)
		if res.HasMoved || !res.IsWall {
			t.Error("out-of-bounds move should report IsWall")
		}
	})

	t.Run("solid entity blocks", func(t *testing.T) {
		res := CalculateMove(mob, 0, 1, world, entities)
		if res.HasMoved {
			t.Error("solid entity should block movement")
		}
		if res.BlockedBy != blocker {
			t.Error("BlockedBy should reference the blocking entity")
		}
	})

	t.Run("corpse is walkable", func(t *testing.T) {
		blocker.Solid = false
		defer func() { blocker.Solid = true }()

		res := CalculateMove(mob, 0, 1, world, entities)
		if !res.HasMoved {
			t.Error("non-solid entity must not block movement")
		}
	})
}

func TestApplyMove(t *testing.T) {
	world := createTestWorld(5, 5)
	world.Map[2][3].IsWall = true
	mob := testMob("walker", 2, 2)

	t.Run("blocked move is a silent no-op", func(t *testing.T) {
		if ApplyMove(mob, 1, 0, world, nil) {
			t.Error("ApplyMove into a wall should return false")
		}
		if mob.Pos.X != 2 || mob.Pos.Y != 2 {
			t.Errorf("position changed on blocked move: %+v", mob.Pos)
		}
	})

	t.Run("legal move updates position", func(t *testing.T) {
		if !ApplyMove(mob, -1, 0, world, nil) {
			t.Fatal("legal move should succeed")
		}
		if mob.Pos.X != 1 || mob.Pos.Y != 2 {
			t.Errorf("position = %+v, want (1,2)", mob.Pos)
		}
	})
}
