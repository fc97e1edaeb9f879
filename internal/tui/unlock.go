// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SetupModel is the first-run screen. It asks for a new master password
// twice and initializes the vault with it.
type SetupModel struct {
	ctx   context.Context
	vault service.VaultService

	form       formModel
	submitting bool
}

// NewSetupModel creates a [SetupModel] with the password field focused.
func NewSetupModel(ctx context.Context, vault service.VaultService) *SetupModel {
	return &SetupModel{
		ctx:   ctx,
		vault: vault,
		form: newFormModel("CREATE MASTER PASSWORD",
			formField{label: "Password", placeholder: "master password", password: true, charLimit: 256},
			formField{label: "Confirm", placeholder: "repeat password", password: true, charLimit: 256},
		),
	}
}

// Init implements [tea.Model].
func (m *SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - setupDoneMsg: on success finishes the flow, otherwise shows the error.
//   - enter: moves to the confirmation field or submits the form.
//
// All other messages are forwarded to the form.
func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(setupDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.form.errMsg = userMessage(done.err)
			return m, nil
		}
		return m, func() tea.Msg { return unlockedMsg{} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		if m.submitting {
			return m, nil
		}
		if !m.form.onLastField() {
			var cmd tea.Cmd
			m.form, cmd = m.form.next()
			return m, cmd
		}

		password, confirm := m.form.value(0), m.form.value(1)
		if errMsg := validateNewPassword(password, confirm); errMsg != "" {
			m.form.errMsg = errMsg
			return m, nil
		}

		m.form.errMsg = ""
		m.submitting = true
		return m, m.cmdSetup(password)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *SetupModel) View() string {
	return m.form.View(m.submitting)
}

func (m *SetupModel) cmdSetup(password string) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return setupDoneMsg{err: vault.Setup(ctx, password)}
	}
}

// VerifyModel is the unlock screen for an initialized vault. ctrl+r asks to
// wipe the vault and start over with a new master password.
type VerifyModel struct {
	ctx   context.Context
	vault service.VaultService

	input        textinput.Model
	submitting   bool
	errMsg       string
	confirmReset bool
}

// NewVerifyModel creates a [VerifyModel] with a masked, focused password
// input.
func NewVerifyModel(ctx context.Context, vault service.VaultService) *VerifyModel {
	input := textinput.New()
	input.Placeholder = "master password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &VerifyModel{ctx: ctx, vault: vault, input: input}
}

// Init implements [tea.Model].
func (m *VerifyModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *VerifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			m.input.SetValue("")
			return m, nil
		}
		return m, func() tea.Msg { return unlockedMsg{} }
	case resetDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageSetup} }
	case tea.KeyMsg:
		if m.confirmReset {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirmReset = false
				m.submitting = true
				return m, m.cmdReset()
			case key.Matches(msg, keys.no):
				m.confirmReset = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.reset):
			if !m.submitting {
				m.confirmReset = true
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdVerify(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *VerifyModel) View() string {
	if m.confirmReset {
		return appStyle.Render(confirmModel{
			message: "Reset the vault? Every stored account will be deleted.",
		}.View())
	}

	var b strings.Builder
	b.WriteString("Password │ [" + m.input.View() + "]\n")
	if m.submitting {
		b.WriteString("\nchecking...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ ctrl+r: reset vault │ f1: about")
}

func (m *VerifyModel) cmdVerify(password string) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return verifyDoneMsg{err: vault.Unlock(ctx, password)}
	}
}

func (m *VerifyModel) cmdReset() tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return resetDoneMsg{err: vault.Reset(ctx)}
	}
}

// validateNewPassword checks a password and its confirmation before they are
// sent to the vault and returns the message to show, or "".
func validateNewPassword(password, confirm string) string {
	switch {
	case password == "":
		return app.MsgEmptyMasterPassword
	case password != confirm:
		return app.MsgPasswordsDoNotMatch
	default:
		return ""
	}
}
