package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestHUDUpdateTracksBest(t *testing.T) {
	h := &HUD{Best: 100}

	h.Update(40, 3, 1)
	if h.Best != 100 {
		t.Errorf("Best = %d, expected 100", h.Best)
	}

	h.Update(150, 2, 2)
	if h.Score != 150 || h.Lives != 2 || h.Level != 2 || h.Best != 150 {
		t.Errorf("HUD = %+v", h)
	}
}

func TestHUDView(t *testing.T) {
	h := &HUD{}
	h.Update(65, 2, 3)

	view := h.View("Breakout", 80)
	for _, want := range []string{"BREAKOUT", "65", "♥♥", "Level", "3"} {
		if !strings.Contains(view, want) {
			t.Errorf("HUD view missing %q: %q", want, view)
		}
	}
	if w := lipgloss.Width(view); w != 80 {
		t.Errorf("HUD width = %d, expected 80", w)
	}
}

func TestLivesGauge(t *testing.T) {
	if got := livesGauge(0); got != "-" {
		t.Errorf("livesGauge(0) = %q", got)
	}
	if got := livesGauge(3); got != "♥♥♥" {
		t.Errorf("livesGauge(3) = %q", got)
	}
}

func TestOverlayDraw(t *testing.T) {
	s := core.NewScreen(40, 15)
	o := &Overlay{}

	o.Draw(s)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("hidden overlay should draw nothing")
	}

	o.Show("Paused", "Press P to resume", "Resume")
	o.Draw(s)

	out := s.String()
	for _, want := range []string{"Paused", "Press P to resume", "[ Resume ]"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q:\n%s", want, out)
		}
	}

	// Title row is yellow
	row := (15-7)/2 + 1
	found := false
	for x := range s.Width() {
		if s.Get(x, row) == 'P' && s.GetCell(x, row).Color == core.ColorYellow {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("title not drawn in yellow on row %d", row)
	}

	o.Hide()
	if o.Visible {
		t.Error("Hide should clear visibility")
	}
}

func TestOverlayClipsToScreen(t *testing.T) {
	s := core.NewScreen(12, 4)
	o := &Overlay{}
	o.Show("A very long title", "and a long message", "Go")

	// Must not panic and must stay inside the screen
	o.Draw(s)
	for _, line := range strings.Split(s.String(), "\n") {
		if n := len([]rune(line)); n > 12 {
			t.Errorf("line overflows screen: %q", line)
		}
	}
}
