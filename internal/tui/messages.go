package tui

import (
	"github.com/MKhiriev/go-otp-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks RootModel to switch the active page.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// unlockedMsg finishes the unlock flow.
type unlockedMsg struct{}

type setupDoneMsg struct {
	err error
}

type verifyDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type windowMsg struct {
	window models.CodeWindow
}

type opDoneMsg struct {
	status string
	err    error
}

type copiedMsg struct {
	issuer string
}

type clearStatusMsg struct {
	seq int
}
