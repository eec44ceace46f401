package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// HUD status bar styles
var (
	hudBarStyle   = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	hudTitleStyle = hudBarStyle.Bold(true).Foreground(lipgloss.Color("208")).Padding(0, 1)
	hudValueStyle = hudBarStyle.Bold(true).Foreground(lipgloss.Color("229"))
	hudLivesStyle = hudBarStyle.Foreground(lipgloss.Color("1"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// HUD keeps the score, lives and level pushed by the game.
type HUD struct {
	Score int
	Lives int
	Level int
	Best  int // Highest known score, including this session
}

// Update implements core.HUD.
func (h *HUD) Update(score, lives, level int) {
	h.Score, h.Lives, h.Level = score, lives, level
	h.Best = max(h.Best, score)
}

// View renders the HUD as a single status bar line of the given width.
func (h *HUD) View(title string, width int) string {
	left := hudTitleStyle.Render(strings.ToUpper(title))

	parts := []string{
		hudBarStyle.Render("Score ") + hudValueStyle.Render(fmt.Sprint(h.Score)),
		hudBarStyle.Render("Lives ") + hudLivesStyle.Render(livesGauge(h.Lives)),
		hudBarStyle.Render("Level ") + hudValueStyle.Render(fmt.Sprint(h.Level)),
		hudBarStyle.Render("Best ") + hudValueStyle.Render(fmt.Sprint(h.Best)),
	}
	right := strings.Join(parts, hudBarStyle.Render("   ")) + hudBarStyle.Render(" ")

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + hudBarStyle.Render(strings.Repeat(" ", gap)) + right
}

// livesGauge draws remaining lives as hearts.
func livesGauge(lives int) string {
	if lives <= 0 {
		return "-"
	}
	return strings.Repeat("♥", lives)
}

// Overlay keeps the modal panel requested by the game.
type Overlay struct {
	Title   string
	Message string
	Action  string
	Visible bool
}

// Show implements core.Notifier.
func (o *Overlay) Show(title, message, action string) {
	o.Title, o.Message, o.Action = title, message, action
	o.Visible = true
}

// Hide implements core.Notifier.
func (o *Overlay) Hide() {
	o.Visible = false
}

// Draw paints the panel centered over the screen contents.
func (o *Overlay) Draw(dst *core.Screen) {
	if !o.Visible {
		return
	}

	action := ""
	if o.Action != "" {
		action = "[ " + o.Action + " ]"
	}

	inner := max(utf8.RuneCountInString(o.Title), utf8.RuneCountInString(o.Message), utf8.RuneCountInString(action))
	w := min(inner+6, dst.Width())
	h := min(7, dst.Height())
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	drawCentered(dst, box, box.Y+1, o.Title, core.ColorYellow)
	drawCentered(dst, box, box.Y+3, o.Message, core.ColorWhite)
	drawCentered(dst, box, box.Y+5, action, core.ColorCyan)
}

// drawCentered writes text centered inside box on row y, clipped to the box.
func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	if text == "" || y >= box.Bottom()-1 {
		return
	}
	runes := []rune(text)
	room := box.W - 2
	if room <= 0 {
		return
	}
	if len(runes) > room {
		runes = runes[:room]
	}
	x := box.X + 1 + (room-len(runes))/2
	dst.DrawTextColored(x, y, string(runes), c)
}
