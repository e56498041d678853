package domain

// TakeDamage наносит урон. Возвращает true, если цель погибла именно
// от этого удара. Повторные вызовы по мертвой цели - no-op: смерть
// срабатывает ровно один раз, hp не уходит в минус.
func (c *CombatComponent) TakeDamage(amount int) bool {
	if c.IsDead {
		return false
	}

	if amount < 0 {
		amount = 0
	}

	c.HP -= amount

	if c.HP <= 0 {
		c.HP = 0
		c.IsDead = true
		return true
	}
	return false
}

// Healthy — hp не ниже 40% максимума. Целочисленная форма, чтобы не
// зависеть от округления float.
func (c *CombatComponent) Healthy() bool {
	return 5*c.HP >= 2*c.MaxHP
}
