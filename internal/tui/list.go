package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-otp-keeper/internal/otp"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/samber/lo"
)

// expiringSeconds is the countdown value from which a code is highlighted as
// about to change.
const expiringSeconds = 5

type windowLookup func(accountID string) (models.CodeWindow, bool)

type listModel struct {
	items  []models.Account
	idx    int
	filter string
}

// setItems replaces the rows and keeps the cursor on the same account when it
// is still present.
func (m *listModel) setItems(items []models.Account) {
	selected, hadSelection := m.current()
	m.items = items

	if hadSelection {
		if _, i, ok := lo.FindIndexOf(items, func(a models.Account) bool { return a.ID == selected.ID }); ok {
			m.idx = i
			return
		}
	}
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.Account, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Account{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) down() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m listModel) View(window windowLookup) string {
	if len(m.items) == 0 {
		if m.filter != "" {
			return "No accounts match \"" + m.filter + "\""
		}
		return "No accounts yet. Press a to add one from an otpauth URI or n to enter it manually."
	}

	var b strings.Builder
	b.WriteString("   Issuer               │ Account                  │ Code     │ Next     │ Left\n")
	b.WriteString("  ─────────────────────┼──────────────────────────┼──────────┼──────────┼─────\n")
	for i, a := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		code, next, left := "...", "...", ""
		if w, ok := window(a.ID); ok {
			code, next = formatCode(w.Code), formatCode(w.NextCode)
			left = fmt.Sprintf("%2ds", w.SecondsLeft)
			if w.Err == nil {
				if w.SecondsLeft <= expiringSeconds {
					code = expiringStyle.Render(fmt.Sprintf("%-8s", code))
				} else {
					code = codeStyle.Render(fmt.Sprintf("%-8s", code))
				}
			}
		}

		fmt.Fprintf(&b, "%s  %-20s │ %-24s │ %-8s │ %-8s │ %s\n",
			cursor,
			fitText(valueOrDash(a.Issuer), 20),
			fitText(valueOrDash(a.Username), 24),
			code,
			next,
			left,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatCode splits a six digit code into two groups of three. The failure
// sentinel and codes of other lengths are returned unchanged.
func formatCode(code string) string {
	if code == otp.FailureCode || len(code) != otp.Digits {
		return code
	}
	return code[:3] + " " + code[3:]
}
