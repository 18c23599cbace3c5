package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/cmd/hilom/wizard/components"
	"github.com/mrsinham/hilom/internal/booking"
	"github.com/mrsinham/hilom/internal/catalog"
)

// ConfirmationScreen shows the whole draft before booking it
type ConfirmationScreen struct {
	formScreen
	summary string
	accept  bool
}

// NewConfirmationScreen creates the review step
func NewConfirmationScreen(d booking.Draft, cat *catalog.Catalog) *ConfirmationScreen {
	s := &ConfirmationScreen{summary: Review(d, cat), accept: true}

	s.formScreen = newFormScreen(booking.StateConfirmation, "CONFIRM APPOINTMENT", "Please check your details.", func() *huh.Form {
		return newForm(
			huh.NewConfirm().
				Key("accept").
				Title("Book this appointment?").
				Affirmative("Accept").
				Negative("Back").
				Value(&s.accept),
		)
	})

	return s
}

// Update implements tea.Model
func (s *ConfirmationScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	if s.done && !s.accept {
		s.done = false
		s.back = true
	}
	return s, cmd
}

// View implements tea.Model
func (s *ConfirmationScreen) View() string {
	return s.view(components.PanelStyle.Render(s.summary), "")
}

// Input accepts the booking
func (s *ConfirmationScreen) Input() (booking.Input, error) {
	return booking.Accept{}, nil
}

// Review renders the draft as label/value lines.
func Review(d booking.Draft, cat *catalog.Catalog) string {
	hospital, doctor := "-", "-"
	if h, ok := cat.Hospital(d.HospitalID); ok {
		hospital = h.Name
	}
	if doc, ok := cat.Doctor(d.DoctorID); ok {
		doctor = doc.Name
	}

	date := "-"
	if !d.Date.IsZero() {
		date = booking.FormatDate(d.Date)
	}

	lines := []string{
		row("Patient", d.Name),
		row("Age", fmt.Sprint(d.Age)),
		row("Gender", d.Gender.String()),
		row("Contact", d.Contact),
		row("Address", d.Address),
		row("Concern", d.Concern),
		"",
		row("Hospital", hospital),
		row("Doctor", doctor),
		row("Date", date),
		row("Time", string(d.Slot)),
		row("Type", d.Consultation.Title()),
		row("Price", fmt.Sprintf("$%d", d.Price)),
	}
	return strings.Join(lines, "\n")
}
