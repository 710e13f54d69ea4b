// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/service"
	"github.com/MKhiriev/go-pet-storefront/models"
)

const msgGoogleQueued = "Google sign-in received. It will continue after the current request."

const (
	loginEmail = iota
	loginPassword
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerPasswordConfirm
)

// sessionReader is the read side of the session store.
type sessionReader interface {
	UserDetails() models.UserDetails
}

// AccountModel is the account panel: the login and registration forms and
// the logged-in view. Which one is shown is decided by [AccountModel.Mode].
type AccountModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	session sessionReader
	logger  *logger.Logger

	// googleHint is the callback URL the Google sign-in page posts to.
	// Empty when the callback listener is disabled.
	googleHint string

	registration bool
	login        form
	register     form

	submitting bool
	seq        int
	cancel     context.CancelFunc
	loggingOut bool

	// pendingGoogleToken is the latest Google token received while another
	// submission was in flight. It is used once that submission ends.
	pendingGoogleToken string

	notice notice
}

func NewAccountModel(ctx context.Context, auth service.ClientAuthService, session sessionReader, googleHint string, logger *logger.Logger) *AccountModel {
	return &AccountModel{
		ctx:        ctx,
		auth:       auth,
		session:    session,
		logger:     logger,
		googleHint: googleHint,
		login: newForm(
			fieldSpec{label: "Email Address", placeholder: "you@example.com", charLimit: 254},
			fieldSpec{label: "Password", secret: true, charLimit: 128},
		),
		register: newForm(
			fieldSpec{label: "Name", charLimit: 128},
			fieldSpec{label: "Email Address", placeholder: "you@example.com", charLimit: 254},
			fieldSpec{label: "Password", secret: true, charLimit: 128},
			fieldSpec{label: "Confirm Password", secret: true, charLimit: 128},
		),
	}
}

// Mode is evaluated from the session store on every call: a logged-in
// customer always gets the logged-in view.
func (m *AccountModel) Mode() models.ViewMode {
	if m.session.UserDetails().IsAuthenticated() {
		return models.ViewLoggedIn
	}
	if m.registration {
		return models.ViewRegistration
	}
	return models.ViewLogin
}

func (m *AccountModel) Init() tea.Cmd {
	return textinput.Blink
}

// CapturesText reports whether printable keys go to a text input.
func (m *AccountModel) CapturesText() bool {
	return m.Mode() != models.ViewLoggedIn
}

// Leave cancels the submission in flight, if any.
func (m *AccountModel) Leave() {
	m.cancelInFlight()
}

func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionChangedMsg:
		if !msg.Details.IsAuthenticated() {
			m.loggingOut = false
		}
		return m, nil

	case GoogleTokenMsg:
		return m, m.googleLogin(msg.Token)

	case authResultMsg:
		m.handleAuthResult(msg)
		return m, m.flushPendingGoogle()

	case logoutDoneMsg:
		m.loggingOut = false
		return m, nil

	case tea.KeyMsg:
		if m.Mode() == models.ViewLoggedIn {
			return m, m.updateLoggedIn(msg)
		}
		return m, m.updateForm(msg)
	}

	if m.Mode() == models.ViewLoggedIn {
		return m, nil
	}
	return m, m.activeForm().update(msg)
}

func (m *AccountModel) updateLoggedIn(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Logout):
		if m.loggingOut {
			return nil
		}
		m.loggingOut = true
		m.registration = false
		m.notice = notice{}

		auth, ctx := m.auth, m.ctx
		return func() tea.Msg {
			auth.Logout(ctx)
			return logoutDoneMsg{}
		}
	case key.Matches(msg, keys.Profile):
		return navigate(pageProfile)
	}
	return nil
}

func (m *AccountModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Toggle):
		m.cancelInFlight()
		m.registration = !m.registration
		return m.flushPendingGoogle()
	case key.Matches(msg, keys.Submit):
		if m.submitting {
			return nil
		}
		return m.submit()
	case key.Matches(msg, keys.Next):
		m.activeForm().focusNext()
		return nil
	case key.Matches(msg, keys.Prev):
		m.activeForm().focusPrev()
		return nil
	case key.Matches(msg, keys.Back):
		m.notice = notice{}
		return nil
	}
	return m.activeForm().update(msg)
}

func (m *AccountModel) activeForm() *form {
	if m.registration {
		return &m.register
	}
	return &m.login
}

func (m *AccountModel) submit() tea.Cmd {
	auth := m.auth

	if m.registration {
		fields := models.RegistrationFields{
			Name:            m.register.value(registerName),
			EmailAddress:    m.register.value(registerEmail),
			Password:        m.register.value(registerPassword),
			PasswordConfirm: m.register.value(registerPasswordConfirm),
		}
		return m.startSubmit(opRegister, func(ctx context.Context) (models.UserDetails, error) {
			return auth.Register(ctx, fields)
		})
	}

	fields := models.LoginFields{
		EmailAddress: m.login.value(loginEmail),
		Password:     m.login.value(loginPassword),
	}
	return m.startSubmit(opEmailLogin, func(ctx context.Context) (models.UserDetails, error) {
		return auth.Login(ctx, fields)
	})
}

func (m *AccountModel) googleLogin(token string) tea.Cmd {
	if m.Mode() == models.ViewLoggedIn {
		m.logger.Debug().Str("func", "*AccountModel.googleLogin").Msg("google token ignored, already logged in")
		return nil
	}
	if m.submitting {
		m.pendingGoogleToken = token
		m.notice = successNotice(msgGoogleQueued)
		return nil
	}

	auth := m.auth
	return m.startSubmit(opGoogleLogin, func(ctx context.Context) (models.UserDetails, error) {
		return auth.GoogleLogin(ctx, token)
	})
}

// flushPendingGoogle starts the queued Google login once nothing is in
// flight. A customer who logged in meanwhile drops the token.
func (m *AccountModel) flushPendingGoogle() tea.Cmd {
	if m.pendingGoogleToken == "" || m.submitting {
		return nil
	}

	token := m.pendingGoogleToken
	m.pendingGoogleToken = ""
	if m.notice.text == msgGoogleQueued {
		m.notice = notice{}
	}
	return m.googleLogin(token)
}

// startSubmit runs call under a context that is canceled when the view
// changes. Only the result of the latest submission is applied.
func (m *AccountModel) startSubmit(op submitOp, call func(ctx context.Context) (models.UserDetails, error)) tea.Cmd {
	m.cancelInFlight()

	ctx, cancel := context.WithCancel(m.ctx)
	m.seq++
	seq := m.seq
	m.cancel = cancel
	m.submitting = true

	return func() tea.Msg {
		defer cancel()
		details, err := call(ctx)
		return authResultMsg{seq: seq, op: op, details: details, err: err}
	}
}

func (m *AccountModel) cancelInFlight() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.submitting {
		m.submitting = false
		m.seq++
	}
}

func (m *AccountModel) handleAuthResult(msg authResultMsg) {
	if msg.seq != m.seq {
		return
	}
	m.submitting = false
	m.cancel = nil

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return
		}
		m.notice = errorNotice(msg.err)
		return
	}

	switch msg.op {
	case opEmailLogin:
		m.login.reset()
		m.registration = false
		m.notice = notice{}
	case opGoogleLogin:
		m.registration = false
		m.notice = notice{}
	case opRegister:
		m.register.reset()
		m.registration = false
		m.notice = successNotice(service.MsgRegistrationSuccessful)
	}
}

func (m *AccountModel) View() string {
	switch m.Mode() {
	case models.ViewLoggedIn:
		return m.viewLoggedIn()
	case models.ViewRegistration:
		return m.viewForm("REGISTER", &m.register, "Already registered? Press ctrl+r to log in.")
	default:
		return m.viewForm("LOGIN", &m.login, "New customer? Press ctrl+r to register.")
	}
}

func (m *AccountModel) viewLoggedIn() string {
	details := m.session.UserDetails()

	var b strings.Builder
	b.WriteString("Welcome back, ")
	b.WriteString(details.Name)
	b.WriteString("\n\n")
	b.WriteString("Name:  ")
	b.WriteString(details.Name)
	b.WriteString("\n")
	b.WriteString("Email: ")
	b.WriteString(details.Email)
	if m.loggingOut {
		b.WriteString("\n\nLogging out...")
	}
	if !m.notice.empty() {
		b.WriteString("\n\n")
		b.WriteString(m.notice.view())
	}

	return renderPage("ACCOUNT", b.String(), hotKeys(keys.Profile, keys.Logout, keys.BuildInfo))
}

func (m *AccountModel) viewForm(title string, f *form, switchHint string) string {
	var b strings.Builder
	b.WriteString(f.view())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(switchHint))
	if m.googleHint != "" && !m.registration {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Sign in with Google: the sign-in page reports to " + m.googleHint))
	}
	if m.submitting {
		b.WriteString("\n\nPlease wait...")
	}
	if !m.notice.empty() {
		b.WriteString("\n\n")
		b.WriteString(m.notice.view())
	}

	return renderPage(title, b.String(), hotKeys(keys.Submit, keys.Next, keys.Prev, keys.Toggle, keys.Back))
}
