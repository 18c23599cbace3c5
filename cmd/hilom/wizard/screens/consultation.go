package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/internal/booking"
)

// ConsultationScreen chooses between an online and a face-to-face visit
type ConsultationScreen struct {
	formScreen
	kind booking.ConsultationType
}

// NewConsultationScreen creates the consultation type step
func NewConsultationScreen(d booking.Draft) *ConsultationScreen {
	s := &ConsultationScreen{kind: d.Consultation}

	option := func(c booking.ConsultationType) huh.Option[booking.ConsultationType] {
		return huh.NewOption(fmt.Sprintf("%s - $%d", c.Title(), c.Price()), c)
	}

	s.formScreen = newFormScreen(booking.StateConsultationType, "CONSULTATION TYPE", "How would you like to meet?", func() *huh.Form {
		return newForm(
			huh.NewSelect[booking.ConsultationType]().
				Key("consultation").
				Title("Consultation").
				Options(
					huh.NewOption("Choose a consultation type", booking.ConsultationNone),
					option(booking.ConsultationOnline),
					option(booking.ConsultationFaceToFace),
				).
				Value(&s.kind),
		)
	})

	return s
}

// Update implements tea.Model
func (s *ConsultationScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *ConsultationScreen) View() string { return s.view() }

// Input returns the chosen type
func (s *ConsultationScreen) Input() (booking.Input, error) {
	return booking.ConsultationInput{Type: s.kind}, nil
}
