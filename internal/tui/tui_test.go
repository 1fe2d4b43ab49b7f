package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/optionallybluestudios/keycl/internal/config"
)

func TestRetryCancelsPreviousContext(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateError

	oldCtx := m.ctx

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)

	select {
	case <-oldCtx.Done():
	default:
		t.Error("previous context still live after returning to browsing")
	}
	if m.ctx.Err() != nil {
		t.Error("replacement context must not start cancelled")
	}
	if m.state != StateBrowsing {
		t.Errorf("state = %v, want StateBrowsing", m.state)
	}
}

func TestQuitKeyOnlyAfterFinish(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateDone

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command in the done state")
	}
}
