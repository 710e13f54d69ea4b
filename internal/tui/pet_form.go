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

const (
	petName = iota
	petGender
	petSpecies
	petBreed
	petAge
	petWeight
	petHealthConcern
)

// PetFormModel adds a pet to the logged-in customer's records.
type PetFormModel struct {
	ctx     context.Context
	profile service.ClientProfileService
	session sessionReader
	logger  *logger.Logger

	form form

	submitting bool
	seq        int
	cancel     context.CancelFunc
	notice     notice
}

func NewPetFormModel(ctx context.Context, profile service.ClientProfileService, session sessionReader, logger *logger.Logger) *PetFormModel {
	return &PetFormModel{
		ctx:     ctx,
		profile: profile,
		session: session,
		logger:  logger,
		form: newForm(
			fieldSpec{label: petHeaders[petName], charLimit: 64},
			fieldSpec{label: petHeaders[petGender], placeholder: "Male / Female", charLimit: 16},
			fieldSpec{label: petHeaders[petSpecies], placeholder: "Dog", charLimit: 64},
			fieldSpec{label: petHeaders[petBreed], charLimit: 64},
			fieldSpec{label: petHeaders[petAge], placeholder: "0", charLimit: 8},
			fieldSpec{label: petHeaders[petWeight], placeholder: "0", charLimit: 8},
			fieldSpec{label: petHeaders[petHealthConcern], charLimit: 256},
		),
	}
}

func (m *PetFormModel) Init() tea.Cmd {
	m.notice = notice{}
	return textinput.Blink
}

func (m *PetFormModel) CapturesText() bool {
	return true
}

// Leave cancels a save in flight.
func (m *PetFormModel) Leave() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.submitting {
		m.submitting = false
		m.seq++
	}
}

func (m *PetFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case petSavedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.submitting = false
		m.cancel = nil
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				m.notice = errorNotice(msg.err)
			}
			return m, nil
		}
		m.form.reset()
		m.notice = notice{}
		return m, navigate(pageProfile)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			m.Leave()
			return m, navigate(pageProfile)
		case key.Matches(msg, keys.Submit):
			if m.submitting {
				return m, nil
			}
			return m, m.submit()
		case key.Matches(msg, keys.Next):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.form.focusPrev()
			return m, nil
		}
	}

	return m, m.form.update(msg)
}

func (m *PetFormModel) submit() tea.Cmd {
	pet, err := m.pet()
	if err != nil {
		m.notice = errorNotice(err)
		return nil
	}

	m.Leave()
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.submitting = true
	m.seq++
	seq := m.seq

	profile, email := m.profile, m.session.UserDetails().Email
	return func() tea.Msg {
		defer cancel()
		saved, err := profile.AddPet(ctx, email, pet)
		return petSavedMsg{seq: seq, pet: saved, err: err}
	}
}

func (m *PetFormModel) pet() (models.Pet, error) {
	age, err := service.ParseMeasure("age", m.form.value(petAge))
	if err != nil {
		return models.Pet{}, err
	}
	weight, err := service.ParseMeasure("weight", m.form.value(petWeight))
	if err != nil {
		return models.Pet{}, err
	}

	return models.Pet{
		Name:          m.form.value(petName),
		Gender:        strings.TrimSpace(m.form.value(petGender)),
		Species:       m.form.value(petSpecies),
		Breed:         strings.TrimSpace(m.form.value(petBreed)),
		AgeYears:      age,
		WeightKg:      weight,
		HealthConcern: strings.TrimSpace(m.form.value(petHealthConcern)),
	}, nil
}

func (m *PetFormModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	if m.submitting {
		b.WriteString("\n\nSaving...")
	}
	if !m.notice.empty() {
		b.WriteString("\n\n")
		b.WriteString(m.notice.view())
	}

	return renderPage("ADD PET", b.String(), hotKeys(keys.Submit, keys.Next, keys.Prev, keys.Back))
}
