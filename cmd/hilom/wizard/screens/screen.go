// Package screens holds one terminal screen per booking step. Screens only
// collect answers; the booking machine decides whether a step may advance.
package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/hilom/cmd/hilom/wizard/components"
	"github.com/mrsinham/hilom/internal/booking"
)

// Screen is one page of the wizard.
type Screen interface {
	tea.Model
	// Done reports that the user submitted the page.
	Done() bool
	// Cancelled reports that the user abandoned the booking.
	Cancelled() bool
	// Back reports that the user asked for the previous step.
	Back() bool
}

// Step is a Screen that answers one booking step.
type Step interface {
	Screen
	// Input returns the answer collected by the page. A non-nil error means
	// the answer could not even be read and is shown like a validation error.
	Input() (booking.Input, error)
	// Reject shows err on the page and lets the user edit the answer again.
	Reject(err error) tea.Cmd
}

// formScreen carries what every huh based step shares.
type formScreen struct {
	state     booking.State
	title     string
	subtitle  string
	build     func() *huh.Form
	form      *huh.Form
	helpPanel *components.HelpPanel
	err       error
	done      bool
	cancelled bool
	back      bool
	width     int
	height    int
}

func newFormScreen(state booking.State, title, subtitle string, build func() *huh.Form) formScreen {
	return formScreen{
		state:     state,
		title:     title,
		subtitle:  subtitle,
		build:     build,
		form:      build(),
		helpPanel: components.NewHelpPanel(),
	}
}

func newForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithShowErrors(true)
}

// Init implements tea.Model
func (s *formScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *formScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return nil
		case "esc":
			s.back = true
			return nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return cmd
}

// Reject rebuilds the form around the values already entered.
func (s *formScreen) Reject(err error) tea.Cmd {
	s.err = err
	s.done = false
	s.helpPanel.SetError(err)
	s.form = s.build()
	return s.form.Init()
}

func (s *formScreen) view(extra ...string) string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{
		components.Steps(s.state),
		"",
		components.TitleStyle.Render(s.title),
	}
	if s.subtitle != "" {
		parts = append(parts, components.SubtitleStyle.Render(s.subtitle))
	}
	parts = append(parts, extra...)
	if s.err != nil {
		parts = append(parts, components.Errors(s.err), "")
	}
	parts = append(parts,
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.KeysStyle.Render("Tab: Next field | Enter: Submit | Esc: Back | Ctrl+C: Cancel"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Done returns true if the form was submitted
func (s *formScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *formScreen) Cancelled() bool { return s.cancelled }

// Back returns true if the user asked to go back
func (s *formScreen) Back() bool { return s.back }

// Err returns the error currently displayed, if any
func (s *formScreen) Err() error { return s.err }

func fieldError(state booking.State, field, format string, args ...any) error {
	return &booking.ValidationError{
		Step:   state,
		Fields: []booking.FieldError{{Field: field, Message: fmt.Sprintf(format, args...)}},
	}
}
