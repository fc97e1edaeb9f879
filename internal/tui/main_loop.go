package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/app"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/otp"
	"github.com/MKhiriev/go-otp-keeper/internal/otpauth"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
const statusTTL = 3 * time.Second

type screen int

const (
	screenList screen = iota
	screenSearch
	screenForm
	screenConfirmDelete
	screenError
	screenBuildInfo
)

type formKind int

const (
	formAddURI formKind = iota
	formAddManual
	formEdit
	formImport
	formExport
	formChangePassword
)

var errNoCodeYet = errors.New("code is not computed yet")

type mainLoopModel struct {
	ctx       context.Context
	vault     service.VaultService
	accounts  service.AccountStore
	sessions  *otp.Sessions
	buildInfo models.AppBuildInfo
	log       *logger.Logger

	// writeClipboard is clipboard.WriteAll outside of tests.
	writeClipboard func(string) error

	list   listModel
	search textinput.Model

	screen   screen
	form     formModel
	formKind formKind
	target   models.Account
	overlay  errorOverlayModel

	status    string
	statusSeq int
	busy      bool

	lock bool
}

func newMainLoopModel(
	ctx context.Context,
	vault service.VaultService,
	accounts service.AccountStore,
	sessions *otp.Sessions,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) *mainLoopModel {
	search := textinput.New()
	search.Placeholder = "issuer or account"
	search.Prompt = "/ "
	search.Width = 40

	m := &mainLoopModel{
		ctx:            ctx,
		vault:          vault,
		accounts:       accounts,
		sessions:       sessions,
		buildInfo:      buildInfo,
		log:            log,
		writeClipboard: clipboard.WriteAll,
		search:         search,
	}

	if err := accounts.LoadErr(); err != nil {
		m.showError(app.MsgStorageCorrupted)
	}
	m.refresh()
	return m
}

func (m *mainLoopModel) Init() tea.Cmd {
	return waitForWindow(m.ctx, m.sessions.Updates())
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case windowMsg:
		return m, waitForWindow(m.ctx, m.sessions.Updates())
	case opDoneMsg:
		return m, m.handleOpDone(msg)
	case copiedMsg:
		return m, m.setStatus("Code copied: " + valueOrDash(msg.issuer))
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

// forward passes non-key messages such as cursor blinks to the focused input.
func (m *mainLoopModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenForm:
		m.form, cmd = m.form.Update(msg)
	case screenSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenError:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.screen = screenList
			m.overlay = errorOverlayModel{}
		}
		return m, nil
	case screenBuildInfo:
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.screen = screenList
		}
		return m, nil
	case screenConfirmDelete:
		return m.handleConfirmDelete(msg)
	case screenSearch:
		return m.handleSearch(msg)
	case screenForm:
		return m.handleForm(msg)
	}

	return m.handleListKey(msg)
}

func (m *mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.lock):
		m.lock = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.up()
	case key.Matches(msg, keys.down):
		m.list.down()
	case key.Matches(msg, keys.esc):
		if m.list.filter != "" {
			m.search.SetValue("")
			m.list.filter = ""
			m.refresh()
		}
	case key.Matches(msg, keys.copy):
		return m, m.copyCurrent()
	case key.Matches(msg, keys.search):
		m.screen = screenSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.buildInfo):
		m.screen = screenBuildInfo
	case key.Matches(msg, keys.addURI):
		return m, m.openForm(formAddURI, models.Account{})
	case key.Matches(msg, keys.addManual):
		return m, m.openForm(formAddManual, models.Account{})
	case key.Matches(msg, keys.importF):
		return m, m.openForm(formImport, models.Account{})
	case key.Matches(msg, keys.password):
		return m, m.openForm(formChangePassword, models.Account{})
	case key.Matches(msg, keys.edit, keys.exportQR, keys.delete):
		current, ok := m.list.current()
		if !ok {
			return m, m.setStatus("No accounts")
		}
		switch {
		case key.Matches(msg, keys.edit):
			return m, m.openForm(formEdit, current)
		case key.Matches(msg, keys.exportQR):
			return m, m.openForm(formExport, current)
		default:
			m.target = current
			m.screen = screenConfirmDelete
		}
	}

	return m, nil
}

func (m *mainLoopModel) handleSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.esc):
		m.search.Blur()
		m.search.SetValue("")
		m.screen = screenList
		m.list.filter = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if filter := m.search.Value(); filter != m.list.filter {
		m.list.filter = filter
		m.refresh()
	}
	return m, cmd
}

func (m *mainLoopModel) handleConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.screen = screenList
		m.busy = true
		return m, m.cmdDelete(m.target)
	case key.Matches(msg, keys.no):
		m.screen = screenList
		m.target = models.Account{}
	}
	return m, nil
}

func (m *mainLoopModel) handleForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if !m.busy {
			m.screen = screenList
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		if !m.form.onLastField() {
			var cmd tea.Cmd
			m.form, cmd = m.form.next()
			return m, cmd
		}
		return m, m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) openForm(kind formKind, target models.Account) tea.Cmd {
	m.formKind = kind
	m.target = target
	m.screen = screenForm

	switch kind {
	case formAddURI:
		m.form = newFormModel("ADD FROM URI",
			formField{label: "URI", placeholder: "otpauth://totp/Issuer:user?secret=..."},
		)
	case formAddManual:
		m.form = newFormModel("ADD ACCOUNT",
			formField{label: "Issuer", placeholder: "GitHub", charLimit: 256},
			formField{label: "Account", placeholder: "alice@example.com", charLimit: 256},
			formField{label: "Secret", placeholder: "base32 secret", charLimit: 1024},
			formField{label: "Icon URL", placeholder: "optional"},
		)
	case formEdit:
		m.form = newFormModel("EDIT ACCOUNT",
			formField{label: "Issuer", value: target.Issuer, charLimit: 256},
			formField{label: "Account", value: target.Username, charLimit: 256},
			formField{label: "Icon URL", value: target.Favicon, placeholder: "optional"},
		)
	case formImport:
		m.form = newFormModel("IMPORT ACCOUNTS",
			formField{label: "File", placeholder: "path to a JSON export"},
		)
	case formExport:
		m.form = newFormModel("EXPORT QR CODE",
			formField{label: "PNG file", value: defaultExportPath(target)},
		)
	case formChangePassword:
		m.form = newFormModel("CHANGE MASTER PASSWORD",
			formField{label: "Current", password: true, charLimit: 256},
			formField{label: "New", password: true, charLimit: 256},
			formField{label: "Confirm", password: true, charLimit: 256},
		)
	}

	return textinput.Blink
}

func (m *mainLoopModel) submitForm() tea.Cmd {
	m.form.errMsg = ""

	var cmd tea.Cmd
	switch m.formKind {
	case formAddURI:
		cmd = m.cmdImportURI(m.form.value(0))
	case formAddManual:
		cmd = m.cmdAdd(models.NewAccount{
			Issuer:   m.form.value(0),
			Username: m.form.value(1),
			Secret:   m.form.value(2),
			Favicon:  m.form.value(3),
		})
	case formEdit:
		issuer, username, favicon := m.form.value(0), m.form.value(1), m.form.value(2)
		cmd = m.cmdUpdate(m.target.ID, models.AccountUpdate{
			Issuer:   &issuer,
			Username: &username,
			Favicon:  &favicon,
		})
	case formImport:
		cmd = m.cmdImportFile(strings.TrimSpace(m.form.value(0)))
	case formExport:
		cmd = m.cmdExport(m.target.ID, strings.TrimSpace(m.form.value(0)))
	case formChangePassword:
		current, next, confirm := m.form.value(0), m.form.value(1), m.form.value(2)
		if errMsg := validateNewPassword(next, confirm); errMsg != "" {
			m.form.errMsg = errMsg
			return nil
		}
		cmd = m.cmdChangePassword(current, next)
	}

	m.busy = true
	return cmd
}

func (m *mainLoopModel) handleOpDone(msg opDoneMsg) tea.Cmd {
	m.busy = false

	if msg.err != nil {
		m.log.Error().Err(msg.err).Str("func", "*mainLoopModel.handleOpDone").Msg("operation failed")

		text := userMessage(msg.err)
		if m.screen == screenForm {
			m.form.errMsg = text
			return nil
		}
		m.showError(text)
		return nil
	}

	m.screen = screenList
	m.target = models.Account{}
	m.refresh()
	return m.setStatus(msg.status)
}

// refresh reloads the visible rows and makes the code sessions follow them.
func (m *mainLoopModel) refresh() {
	m.list.setItems(m.accounts.Search(m.list.filter))
	m.sessions.Sync(m.ctx, m.list.items)
}

func (m *mainLoopModel) showError(text string) {
	m.overlay = errorOverlayModel{message: text}
	m.screen = screenError
}

func (m *mainLoopModel) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text

	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *mainLoopModel) copyCurrent() tea.Cmd {
	current, ok := m.list.current()
	if !ok {
		return m.setStatus("No accounts")
	}

	w, ok := m.sessions.Window(current.ID)
	if !ok {
		return m.setStatus(errNoCodeYet.Error())
	}
	if w.Err != nil {
		m.showError(userMessage(w.Err))
		return nil
	}

	code, write, issuer := w.Code, m.writeClipboard, current.Issuer
	return func() tea.Msg {
		if err := write(code); err != nil {
			return opDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{issuer: issuer}
	}
}

func (m *mainLoopModel) View() string {
	switch m.screen {
	case screenBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case screenForm:
		return m.form.View(m.busy)
	case screenError:
		return appStyle.Render(m.overlay.View())
	case screenConfirmDelete:
		label := valueOrDash(m.target.Issuer)
		if m.target.Username != "" {
			label += " (" + m.target.Username + ")"
		}
		return appStyle.Render(confirmModel{message: "Delete \"" + label + "\"?"}.View())
	}

	var b strings.Builder
	if m.screen == screenSearch || m.list.filter != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}
	b.WriteString(m.list.View(m.sessions.Window))
	if m.busy {
		b.WriteString("\n\nworking...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	hotKeys := "↑/↓: move │ c: copy │ a: add URI │ n: add │ e: edit │ d: delete │ i: import │ x: QR │ /: search │ p: password │ l: lock │ v: about │ q: quit"
	if m.screen == screenSearch {
		hotKeys = "enter: keep filter │ esc: clear filter"
	}
	return renderPage("ONE-TIME CODES", b.String(), hotKeys)
}

func (m *mainLoopModel) cmdImportURI(raw string) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		a, err := vault.ImportURI(ctx, raw)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Added " + accountLabel(a)}
	}
}

func (m *mainLoopModel) cmdAdd(account models.NewAccount) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts
	return func() tea.Msg {
		a, err := accounts.Add(ctx, account)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Added " + accountLabel(a)}
	}
}

func (m *mainLoopModel) cmdUpdate(id string, update models.AccountUpdate) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts
	return func() tea.Msg {
		a, err := accounts.Update(ctx, id, update)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Saved " + accountLabel(a)}
	}
}

func (m *mainLoopModel) cmdDelete(target models.Account) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts
	return func() tea.Msg {
		if err := accounts.Delete(ctx, target.ID); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Deleted " + accountLabel(target)}
	}
}

func (m *mainLoopModel) cmdImportFile(path string) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return opDoneMsg{err: fmt.Errorf("open import file: %w", err)}
		}
		defer f.Close()

		imported, err := vault.ImportFile(ctx, f)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: fmt.Sprintf("Imported %d accounts", len(imported))}
	}
}

func (m *mainLoopModel) cmdExport(id, path string) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		if err := vault.ExportQRCode(ctx, id, otpauth.DefaultQRSize, path); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "QR code saved to " + path}
	}
}

func (m *mainLoopModel) cmdChangePassword(current, next string) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		if err := vault.ChangeMasterPassword(ctx, current, next); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Master password changed"}
	}
}

// waitForWindow blocks until a session emits a code window or ctx ends.
func waitForWindow(ctx context.Context, updates <-chan models.CodeWindow) tea.Cmd {
	return func() tea.Msg {
		select {
		case w := <-updates:
			return windowMsg{window: w}
		case <-ctx.Done():
			return nil
		}
	}
}

func accountLabel(a models.Account) string {
	switch {
	case a.Issuer != "" && a.Username != "":
		return a.Issuer + " (" + a.Username + ")"
	case a.Issuer != "":
		return a.Issuer
	default:
		return valueOrDash(a.Username)
	}
}

// defaultExportPath suggests a PNG file name built from the account label.
func defaultExportPath(a models.Account) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(a.Issuer+" "+a.Username))

	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	name = strings.Trim(name, "-")
	if name == "" {
		name = "account"
	}
	return name + ".png"
}
