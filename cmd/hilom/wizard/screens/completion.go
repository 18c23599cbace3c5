package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/hilom/cmd/hilom/wizard/components"
	"github.com/mrsinham/hilom/internal/booking"
)

// CompletionScreen thanks the patient once the booking is accepted.
// The outcome of persistence is never shown here.
type CompletionScreen struct {
	appt booking.Appointment
	done bool
}

// NewCompletionScreen creates the final page for appt
func NewCompletionScreen(appt booking.Appointment) *CompletionScreen {
	return &CompletionScreen{appt: appt}
}

// Init implements tea.Model
func (s *CompletionScreen) Init() tea.Cmd { return nil }

// Update implements tea.Model
func (s *CompletionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		s.done = true
	}
	return s, nil
}

// View implements tea.Model
func (s *CompletionScreen) View() string {
	a := s.appt
	details := strings.Join([]string{
		row("Patient", a.PatientName),
		row("Hospital", a.Hospital.Name),
		row("Doctor", a.Doctor.Name),
		row("When", fmt.Sprintf("%s %s", booking.FormatDate(a.Date), a.Slot)),
		row("Type", a.Consultation.Title()),
		row("Price", fmt.Sprintf("$%d", a.Price)),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		components.SuccessStyle.Render("✓ Appointment booked"),
		"",
		components.PanelStyle.Render(details),
		"",
		components.KeysStyle.Render("Press any key to exit"),
	)
}

// Done returns true once the user dismissed the page
func (s *CompletionScreen) Done() bool { return s.done }

// Cancelled is always false, the booking is already made
func (s *CompletionScreen) Cancelled() bool { return false }

// Back is always false
func (s *CompletionScreen) Back() bool { return false }
