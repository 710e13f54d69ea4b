// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/service"
	"github.com/MKhiriev/go-pet-storefront/models"
)

var (
	petHeaders         = []string{"Name", "Gender", "Species", "PetBreed", "Age(Years)", "Weight(Kg)", "Health Concern"}
	transactionHeaders = []string{"Date", "OrderID", "Store", "Items", "Total", "Tracking ID", "Status"}
)

// ProfileModel renders the customer's pets and order history.
type ProfileModel struct {
	ctx      context.Context
	profile  service.ClientProfileService
	session  sessionReader
	copyText func(text string) error
	logger   *logger.Logger

	details      models.UserDetails
	pets         []models.Pet
	transactions []models.Transaction
	selected     int

	loading bool
	seq     int
	cancel  context.CancelFunc
	notice  notice
}

func NewProfileModel(ctx context.Context, profile service.ClientProfileService, session sessionReader, logger *logger.Logger) *ProfileModel {
	return &ProfileModel{
		ctx:      ctx,
		profile:  profile,
		session:  session,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}
}

// Init reloads the page for the current session, or sends a logged-out
// customer back to the account panel.
func (m *ProfileModel) Init() tea.Cmd {
	return m.load()
}

// Leave cancels a load in flight.
func (m *ProfileModel) Leave() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loading = false
}

func (m *ProfileModel) load() tea.Cmd {
	m.Leave()

	m.details = m.session.UserDetails()
	if !m.details.IsAuthenticated() {
		m.pets, m.transactions = nil, nil
		return navigate(pageAccount)
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.loading = true
	m.seq++
	seq := m.seq

	profile, email := m.profile, m.details.Email
	return func() tea.Msg {
		defer cancel()

		pets, err := profile.Pets(ctx, email)
		if err != nil {
			return profileLoadedMsg{seq: seq, err: err}
		}
		transactions, err := profile.Transactions(ctx, email)
		if err != nil {
			return profileLoadedMsg{seq: seq, err: err}
		}
		return profileLoadedMsg{seq: seq, pets: pets, transactions: transactions}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionChangedMsg:
		return m, m.load()

	case profileLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.cancel = nil
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				m.notice = errorNotice(msg.err)
			}
			return m, nil
		}
		m.pets = msg.pets
		m.transactions = msg.transactions
		if m.selected >= len(m.transactions) {
			m.selected = 0
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Str("func", "*ProfileModel.Update").Msg("clipboard write failed")
			m.notice = notice{text: "Could not copy tracking ID", isError: true}
			return m, nil
		}
		m.notice = successNotice("Copied tracking ID " + msg.trackingID)
		return m, nil

	case tea.KeyMsg:
		return m, m.updateKeys(msg)
	}

	return m, nil
}

func (m *ProfileModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		return navigate(pageAccount)
	case key.Matches(msg, keys.AddPet):
		return navigate(pagePetForm)
	case key.Matches(msg, keys.Reload):
		m.notice = notice{}
		return m.load()
	case key.Matches(msg, keys.RowUp):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, keys.RowDown):
		if m.selected < len(m.transactions)-1 {
			m.selected++
		}
	case key.Matches(msg, keys.Copy):
		if len(m.transactions) == 0 {
			return nil
		}
		trackingID := m.transactions[m.selected].TrackingID
		write := m.copyText
		return func() tea.Msg {
			return copiedMsg{trackingID: trackingID, err: write(trackingID)}
		}
	}
	return nil
}

// SelectedTransaction returns the highlighted order, if any.
func (m *ProfileModel) SelectedTransaction() (models.Transaction, bool) {
	if m.selected < 0 || m.selected >= len(m.transactions) {
		return models.Transaction{}, false
	}
	return m.transactions[m.selected], true
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	b.WriteString(m.details.Name)
	b.WriteString("\n")
	b.WriteString(m.details.Email)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Account Summary"))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Your Pet Records"))
	b.WriteString("\n")
	petRows := make([][]string, 0, len(m.pets))
	for _, p := range m.pets {
		petRows = append(petRows, p.Row())
	}
	b.WriteString(renderTable(petHeaders, petRows, -1))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Transactions"))
	b.WriteString("\n")
	transactionRows := make([][]string, 0, len(m.transactions))
	for _, t := range m.transactions {
		transactionRows = append(transactionRows, t.Row())
	}
	selected := -1
	if len(m.transactions) > 0 {
		selected = m.selected
	}
	b.WriteString(renderTable(transactionHeaders, transactionRows, selected))

	if m.loading {
		b.WriteString("\n\nLoading...")
	}
	if !m.notice.empty() {
		b.WriteString("\n\n")
		b.WriteString(m.notice.view())
	}

	return renderPage("PROFILE", b.String(), hotKeys(keys.AddPet, keys.RowUp, keys.RowDown, keys.Copy, keys.Reload, keys.Back, keys.BuildInfo))
}
