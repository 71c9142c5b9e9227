package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movo/dashboard/internal/dashboard"
	"github.com/movo/dashboard/internal/domain"
)

// profile form field indices
const (
	profileFieldName = iota
	profileFieldBusiness
	profileFieldEmail
	profileFieldCount
)

var profileLabels = [profileFieldCount]string{"Name:", "Business Name:", "Email:"}

// ProfileModalModel is the merchant profile form shown over the dashboard
type ProfileModalModel struct {
	*shared
	active     bool
	fields     []textinput.Model
	fieldFocus int
}

func NewProfileModalModel(s *shared) *ProfileModalModel {
	return &ProfileModalModel{shared: s}
}

// IsCapturingInput returns true while the modal is open
func (m *ProfileModalModel) IsCapturingInput() bool {
	return m.active
}

func (m *ProfileModalModel) Init() tea.Cmd {
	return nil
}

// open fills the form from the cached profile
func (m *ProfileModalModel) open() tea.Cmd {
	m.active = true
	m.fields = make([]textinput.Model, profileFieldCount)
	m.fields[profileFieldName] = newTextInput("Jane Doe", 100, 40)
	m.fields[profileFieldBusiness] = newTextInput("Doe Coffee Roasters", 150, 40)
	m.fields[profileFieldEmail] = newTextInput("jane@example.com", 254, 40)

	if p := m.ctrl.Profile().Profile(); p != nil {
		m.fields[profileFieldName].SetValue(p.Name)
		m.fields[profileFieldBusiness].SetValue(p.BusinessName)
		m.fields[profileFieldEmail].SetValue(p.Email)
	}

	m.fieldFocus = profileFieldName
	return m.fields[m.fieldFocus].Focus()
}

func (m *ProfileModalModel) close() {
	m.active = false
	m.fields = nil
}

func (m *ProfileModalModel) save() tea.Cmd {
	update := domain.NewProfileUpdate(
		m.fields[profileFieldName].Value(),
		m.fields[profileFieldBusiness].Value(),
		m.fields[profileFieldEmail].Value(),
	)
	task, err := m.ctrl.SaveProfile(update)
	if err != nil || task == nil {
		// validation errors are shown from SaveErr
		return nil
	}
	return runTasks([]dashboard.Task{task})
}

func (m *ProfileModalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			m.ctrl.DismissProfileModal()
			m.close()
			return m, nil

		case key.Matches(msg, DefaultKeyMap.NextField):
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % profileFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.PrevField):
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + profileFieldCount) % profileFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Save):
			return m, m.save()

		case key.Matches(msg, DefaultKeyMap.Select):
			if m.fieldFocus == profileFieldCount-1 {
				return m, m.save()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()
		}
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *ProfileModalModel) View() string {
	if !m.active {
		return ""
	}

	var s string
	s += titleStyle.Render("Merchant Profile") + "\n"
	if m.ctrl.Profile().OnboardingRequired() {
		s += warnStyle.Render("Complete your profile to start creating invoices.") + "\n"
	}
	s += "\n"

	for i := range m.fields {
		indicator := "  "
		style := subtitleStyle
		if i == m.fieldFocus {
			indicator = "> "
			style = focusedLabel
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, style.Render(profileLabels[i]), m.fields[i].View())
	}

	switch {
	case m.ctrl.Saving():
		s += fmt.Sprintf("%s Saving profile...\n\n", m.spinner.View())
	case m.ctrl.SaveErr() != nil:
		s += errorStyle.Render(fmt.Sprintf("Error: %v", m.ctrl.SaveErr())) + "\n\n"
	}

	s += helpStyle.Render("tab: next field  ctrl+s: save  esc: later")
	return modalStyle.Render(s)
}
