package domain

import "testing"

func TestCombatComponent_TakeDamage(t *testing.T) {
	t.Run("partial damage", func(t *testing.T) {
		c := &CombatComponent{HP: 100, MaxHP: 100, Atk: 10}

		died := c.TakeDamage(30)

		if died {
			t.Error("TakeDamage(30) on 100 hp should not kill")
		}
		if c.HP != 70 {
			t.Errorf("HP = %d, want 70", c.HP)
		}
	})

	t.Run("lethal damage clamps to zero", func(t *testing.T) {
		c := &CombatComponent{HP: 100, MaxHP: 100}

		died := c.TakeDamage(250)

		if !died {
			t.Error("lethal damage should report death")
		}
		if c.HP != 0 {
			t.Errorf("HP = %d, want exactly 0", c.HP)
		}
		if !c.IsDead {
			t.Error("IsDead should be true")
		}
	})

	t.Run("exact hp is lethal", func(t *testing.T) {
		c := &CombatComponent{HP: 40, MaxHP: 100}

		if !c.TakeDamage(40) {
			t.Error("damage equal to hp should kill")
		}
		if c.HP != 0 {
			t.Errorf("HP = %d, want 0", c.HP)
		}
	})

	t.Run("death fires exactly once", func(t *testing.T) {
		c := &CombatComponent{HP: 10, MaxHP: 100}

		first := c.TakeDamage(50)
		second := c.TakeDamage(50)

		if !first {
			t.Error("first lethal hit should report death")
		}
		if second {
			t.Error("hit on a corpse must not report death again")
		}
		if c.HP != 0 {
			t.Errorf("HP after post-mortem hit = %d, want 0", c.HP)
		}
	})

	t.Run("negative amount is ignored", func(t *testing.T) {
		c := &CombatComponent{HP: 50, MaxHP: 100}

		c.TakeDamage(-20)

		if c.HP != 50 {
			t.Errorf("HP = %d, want unchanged 50", c.HP)
		}
	})
}

func TestCombatComponent_Healthy(t *testing.T) {
	tests := []struct {
		name  string
		hp    int
		maxHP int
		want  bool
	}{
		{"full health", 100, 100, true},
		{"exactly 40 percent", 40, 100, true},
		{"just below threshold", 39, 100, false},
		{"zero hp", 0, 100, false},
		{"odd max, above", 94, 235, true},  // 0.4*235 = 94
		{"odd max, below", 93, 235, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CombatComponent{HP: tt.hp, MaxHP: tt.maxHP}
			if got := c.Healthy(); got != tt.want {
				t.Errorf("Healthy() with %d/%d = %v, want %v", tt.hp, tt.maxHP, got, tt.want)
			}
		})
	}
}
