package systems

import (
	"math/rand"
	"testing"

	"mirkwall-server/internal/domain"
)

func TestResolveAttack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("damage roll stays in [0, atk]", func(t *testing.T) {
		attacker := testPlayer(0, 0)
		attacker.Combat.Atk = 15

		for i := 0; i < 500; i++ {
			target := testMob("dummy", 1, 0)
			res := ResolveAttack(attacker, target, rng)
			if res.Damage < 0 || res.Damage > 15 {
				t.Fatalf("damage %d outside [0,15]", res.Damage)
			}
			if res.NoTarget {
				t.Fatal("target with combat component reported NoTarget")
			}
		}
	})

	t.Run("roll covers both miss and full damage", func(t *testing.T) {
		attacker := testPlayer(0, 0)
		attacker.Combat.Atk = 3

		seen := make(map[int]bool)
		for i := 0; i < 2000; i++ {
			target := testMob("dummy", 1, 0)
			res := ResolveAttack(attacker, target, rng)
			seen[res.Damage] = true
		}
		for want := 0; want <= 3; want++ {
			if !seen[want] {
				t.Errorf("damage value %d never rolled in 2000 attempts", want)
			}
		}
	})

	t.Run("target without combat component", func(t *testing.T) {
		attacker := testPlayer(0, 0)
		scenery := &domain.Entity{ID: "door", Name: "Door", Solid: true}

		res := ResolveAttack(attacker, scenery, rng)
		if !res.NoTarget {
			t.Error("expected NoTarget sentinel")
		}
		if res.Damage != 0 || res.TargetDied {
			t.Error("no damage may be dealt to a non-combat entity")
		}
	})

	t.Run("attack on a corpse does not re-kill", func(t *testing.T) {
		attacker := testPlayer(0, 0)
		target := testMob("victim", 1, 0)
		target.Combat.TakeDamage(999)
		MarkDead(target)

		res := ResolveAttack(attacker, target, rng)
		if res.TargetDied {
			t.Error("corpse must not die twice")
		}
		if target.Combat.HP != 0 {
			t.Errorf("corpse HP = %d, want 0", target.Combat.HP)
		}
		if target.AI.State != domain.StateDead {
			t.Error("corpse must stay in DEAD state")
		}
	})
}

func TestMarkDead(t *testing.T) {
	t.Run("mob corpse", func(t *testing.T) {
		mob := testMob("spider", 3, 3)
		MarkDead(mob)

		if mob.Solid {
			t.Error("corpse must not be solid")
		}
		if mob.AI.State != domain.StateDead {
			t.Errorf("state = %v, want DEAD", mob.AI.State)
		}
		if mob.Render.Glyph.Char() != domain.CorpseCharMob {
			t.Errorf("glyph char = %q, want %q", mob.Render.Glyph.Char(), byte(domain.CorpseCharMob))
		}
	})

	t.Run("player corpse marker", func(t *testing.T) {
		p := testPlayer(0, 0)
		MarkDead(p)

		if p.Render.Glyph.Char() != domain.CorpseCharPlayer {
			t.Errorf("glyph char = %q, want %q", p.Render.Glyph.Char(), byte(domain.CorpseCharPlayer))
		}
	})
}
