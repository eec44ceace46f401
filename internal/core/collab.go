package core

// HUD displays the score, lives and level triple.
// Calls are fire-and-forget.
type HUD interface {
	Update(score, lives, level int)
}

// Notifier shows and hides a modal panel with a title, message and action label.
type Notifier interface {
	Show(title, message, action string)
	Hide()
}

// NopHUD discards HUD updates.
type NopHUD struct{}

// Update implements HUD.
func (NopHUD) Update(int, int, int) {}

// NopNotifier discards overlay requests.
type NopNotifier struct{}

// Show implements Notifier.
func (NopNotifier) Show(string, string, string) {}

// Hide implements Notifier.
func (NopNotifier) Hide() {}
