package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{keyRunes("a"), core.ActionLeft, false},
		{keyRunes("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionClick, false},
		{keyRunes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRunes("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
		}
	}
}

func TestHoldWindowExpires(t *testing.T) {
	km := NewKeyMapper(3)
	km.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})

	for i := 0; i < 3; i++ {
		if !km.Frame().Has(core.ActionLeft) {
			t.Fatalf("frame %d: left should still be held", i)
		}
	}
	if km.Frame().Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper(3)
	km.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	km.Frame()
	km.Frame()
	km.HandleKey(tea.KeyMsg{Type: tea.KeyRight})

	for i := 0; i < 3; i++ {
		if !km.Frame().Has(core.ActionRight) {
			t.Fatalf("frame %d: repeat should refresh the hold", i)
		}
	}
}

func TestOppositeDirectionReplacesHold(t *testing.T) {
	km := NewKeyMapper(5)
	km.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	km.HandleKey(tea.KeyMsg{Type: tea.KeyRight})

	frame := km.Frame()
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("expected only right held, got mask %05b", frame.Mask())
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	km := NewKeyMapper(0)
	km.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if !km.Frame().Has(core.ActionFire) {
		t.Fatal("fire should reach the next frame")
	}
	if km.Frame().Has(core.ActionFire) {
		t.Error("fire must not repeat without another key event")
	}
}

func TestMouseClick(t *testing.T) {
	km := NewKeyMapper(0)

	km.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if km.Frame().Has(core.ActionClick) {
		t.Error("mouse motion is not a click")
	}

	km.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !km.Frame().Has(core.ActionClick) {
		t.Error("left press should click")
	}

	km.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if km.Frame().Has(core.ActionClick) {
		t.Error("right press should not click")
	}
}

func TestQuitReturnsTrue(t *testing.T) {
	km := NewKeyMapper(0)
	if !km.HandleKey(keyRunes("q")) {
		t.Error("q should report quit")
	}
	if !km.Frame().Has(core.ActionQuit) {
		t.Error("quit should reach the next frame")
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapper(10)
	km.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	km.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	km.Release()

	if !km.Frame().Empty() {
		t.Error("Release should drop everything")
	}
}
