package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and the number of articles listed
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countLabel = widget.NewLabel("Articles: --")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil, nil,
		sb.statusLabel,
		sb.countLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetArticleCount updates the row counter
func (sb *StatusBar) SetArticleCount(n int) {
	sb.countLabel.SetText(fmt.Sprintf("Articles: %d", n))
}

// GetArticleCount returns the displayed row counter text
func (sb *StatusBar) GetArticleCount() string {
	return sb.countLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.countLabel.SetText("Articles: --")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
