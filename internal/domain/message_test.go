package domain

import "testing"

func TestMessageLog_Bounded(t *testing.T) {
	l := NewMessageLog(3)

	l.Add("one", MsgInfo)
	l.Add("two", MsgInfo)
	l.Add("three", MsgCombat)
	l.Add("four", MsgDeath)

	hist := l.History()
	if len(hist) != 3 {
		t.Fatalf("History() len = %d, want 3", len(hist))
	}
	// Старейшая запись вытеснена
	if hist[0].Text != "two" || hist[2].Text != "four" {
		t.Errorf("unexpected history order: %q .. %q", hist[0].Text, hist[2].Text)
	}
}

func TestMessageLog_FlushTurn(t *testing.T) {
	l := NewMessageLog(10)

	l.Add("first", MsgInfo)
	l.Add("second", MsgCombat)

	turn := l.FlushTurn()
	if len(turn) != 2 {
		t.Fatalf("FlushTurn() len = %d, want 2", len(turn))
	}
	if turn[1].Style != MsgCombat {
		t.Errorf("style = %q, want %q", turn[1].Style, MsgCombat)
	}

	if again := l.FlushTurn(); len(again) != 0 {
		t.Errorf("second FlushTurn() len = %d, want 0", len(again))
	}

	// История при сбросе хода сохраняется
	if len(l.History()) != 2 {
		t.Errorf("History() len = %d, want 2", len(l.History()))
	}
}
