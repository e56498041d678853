package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"mirkwall-server/internal/domain"
	"mirkwall-server/internal/systems"
	"mirkwall-server/pkg/api"
	"mirkwall-server/pkg/dungeon"
	"mirkwall-server/pkg/logger"
)

// GameState - фаза партии.
type GameState uint8

const (
	GameAlive GameState = iota
	GameDead
)

func (s GameState) String() string {
	if s == GameDead {
		return "DEAD"
	}
	return "ALIVE"
}

// Session - одна партия одного игрока. Все состояние мира живет здесь,
// никаких глобальных переменных: сессии не видят друг друга.
type Session struct {
	World  *domain.GameWorld
	Player *domain.Entity
	Mobs   *domain.MobRegistry
	Log    *domain.MessageLog
	Rng    *rand.Rand
	State  GameState

	turn int
}

// NewSession собирает партию на статичном уровне по умолчанию.
func NewSession(cfg *Config) (*Session, error) {
	lvl, err := dungeon.BuildLevel(dungeon.DefaultLevel)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	mobs := domain.NewMobRegistry()
	for _, m := range lvl.Mobs {
		mobs.Add(m)
	}

	s := &Session{
		World:  lvl.World,
		Player: dungeon.CreatePlayer(lvl.PlayerPos),
		Mobs:   mobs,
		Log:    domain.NewMessageLog(domain.MaxLogHistory),
		Rng:    rand.New(rand.NewSource(cfg.Seed)),
		State:  GameAlive,
	}

	systems.RefreshFOV(s.World, s.Player.Pos, domain.VisionRadius)

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      cfg.Seed,
		"mobs":      mobs.Len(),
	}).Info("Session created.")

	return s, nil
}

// ProcessCommand - главный метод обработки ввода. Возвращаемый ответ
// содержит полный снимок мира, видимого игроку, и сообщения хода.
func (s *Session) ProcessCommand(cmd api.ClientCommand) *api.ServerResponse {
	respType := "UPDATE"
	playerActed := false

	switch domain.ParseAction(cmd.Action) {
	case domain.ActionInit:
		s.Log.Add("Welcome to the dungeon.", domain.MsgInfo)
		respType = "INIT"

	case domain.ActionMove:
		if s.State == GameDead {
			s.Log.Add("You are dead.", domain.MsgError)
			break
		}

		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			s.Log.Add("Malformed move command.", domain.MsgError)
			break
		}
		if err := p.Validate(); err != nil {
			s.Log.Add(err.Error(), domain.MsgError)
			break
		}

		s.MoveOrAttack(p.Dx, p.Dy)
		playerActed = true

	case domain.ActionWait:
		if s.State == GameDead {
			s.Log.Add("You are dead.", domain.MsgError)
			break
		}
		playerActed = true

	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"action":    cmd.Action,
		}).Warn("Unknown action ignored.")
		s.Log.Add("Unknown action.", domain.MsgError)
	}

	// Любое действие игрока, стоящее времени, двигает мир
	if playerActed {
		s.turn++
		systems.RefreshFOV(s.World, s.Player.Pos, domain.VisionRadius)
		s.runMobPass()
	}

	// Поле зрения пересчитывается и после хода мобов: игрок мог
	// никуда не пойти, но снимок всегда отражает текущую позицию
	systems.RefreshFOV(s.World, s.Player.Pos, domain.VisionRadius)

	return s.buildResponse(respType)
}

// MoveOrAttack - шаг игрока в направлении (dx, dy). Если клетка занята
// живым мобом, шаг становится атакой; игрок с места не сходит.
// За ход выполняется ровно одно из двух: либо атака, либо движение.
func (s *Session) MoveOrAttack(dx, dy int) {
	dest := s.Player.Pos.Shift(dx, dy)

	if target := s.liveMobAt(dest); target != nil {
		res := systems.ResolveAttack(s.Player, target, s.Rng)

		if res.Damage > 0 {
			s.Log.Add(fmt.Sprintf("You attack %s for %d damage!", target.Name, res.Damage), domain.MsgCombat)
		} else {
			s.Log.Add("You missed!", domain.MsgCombat)
		}

		if res.TargetDied {
			s.Log.Add(fmt.Sprintf("You killed %s!", target.Name), domain.MsgDeath)
			target.Name += "'s remains"
			s.Mobs.SendToFront(target)
		}
		return
	}

	// Заблокированный шаг - тихий no-op: ход все равно потрачен
	systems.ApplyMove(s.Player, dx, dy, s.World, s.collisionList())
}

// liveMobAt возвращает живого моба на клетке, либо nil.
func (s *Session) liveMobAt(pos domain.Position) *domain.Entity {
	for _, m := range s.Mobs.Snapshot() {
		if m.Pos == pos && m.Combat != nil && !m.Combat.IsDead {
			return m
		}
	}
	return nil
}

// collisionList - все сущности уровня для проверки столкновений.
func (s *Session) collisionList() []*domain.Entity {
	out := make([]*domain.Entity, 0, s.Mobs.Len()+1)
	out = append(out, s.Player)
	out = append(out, s.Mobs.Snapshot()...)
	return out
}
