package domain

// AIState — дискретное состояние поведения моба.
// StateDead терминально: мертвый моб не ходит, не атакует и не
// возвращается в таблицу переходов.
type AIState uint8

const (
	StateHold AIState = iota
	StateChase
	StateRun
	StateDead
)

// String реализует интерфейс Stringer (для логов)
func (s AIState) String() string {
	switch s {
	case StateHold:
		return "HOLD"
	case StateChase:
		return "CHASE"
	case StateRun:
		return "RUN"
	case StateDead:
		return "DEAD"
	}
	return "UNKNOWN"
}
