package domain

import (
	"time"

	"mirkwall-server/pkg/utils"
)

// Стили записей игрового лога. Клиент раскрашивает текст по стилю.
const (
	MsgInfo     = "INFO"
	MsgCombat   = "COMBAT"
	MsgDeath    = "DEATH"
	MsgBehavior = "BEHAVIOR"
	MsgError    = "ERROR"
)

// LogEntry - запись повествовательного лога
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Style     string `json:"style"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// MessageLog — ограниченный игровой лог. Хранит последние max записей
// (старые вытесняются) и отдельно буфер текущего хода для отправки
// клиенту. Ядро только пишет сюда, отрисовка - забота клиента.
type MessageLog struct {
	entries []LogEntry
	turn    []LogEntry
	max     int
}

func NewMessageLog(max int) *MessageLog {
	return &MessageLog{max: max}
}

// Add добавляет запись в историю и в буфер текущего хода.
func (l *MessageLog) Add(text, style string) {
	entry := LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Style:     style,
		Timestamp: time.Now().UnixMilli(),
	}

	l.entries = append(l.entries, entry)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}

	l.turn = append(l.turn, entry)
}

// FlushTurn возвращает записи, накопленные с прошлого сброса,
// и очищает буфер хода.
func (l *MessageLog) FlushTurn() []LogEntry {
	out := l.turn
	l.turn = nil
	return out
}

// History возвращает ограниченную историю лога (старые записи уже
// вытеснены).
func (l *MessageLog) History() []LogEntry {
	return l.entries
}
