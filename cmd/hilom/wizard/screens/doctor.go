package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/internal/booking"
	"github.com/mrsinham/hilom/internal/catalog"
)

// DoctorScreen picks the doctor
type DoctorScreen struct {
	formScreen
	doctorID int
}

// NewDoctorScreen lists doctors in the given order
func NewDoctorScreen(doctors []catalog.Doctor, selected int, hospital string) *DoctorScreen {
	s := &DoctorScreen{doctorID: selected}
	if s.doctorID == 0 && len(doctors) > 0 {
		s.doctorID = doctors[0].ID
	}

	options := make([]huh.Option[int], len(doctors))
	for i, d := range doctors {
		label := fmt.Sprintf("%s  ★ %.1f  %d yrs  %s", d.Name, d.Rating, d.Years, d.Specialty)
		options[i] = huh.NewOption(label, d.ID)
	}

	s.formScreen = newFormScreen(booking.StateDoctorSelect, "CHOOSE YOUR DOCTOR", "Available at "+hospital+".", func() *huh.Form {
		return newForm(
			huh.NewSelect[int]().
				Key("doctor").
				Title("Doctor").
				Options(options...).
				Value(&s.doctorID),
		)
	})

	return s
}

// Update implements tea.Model
func (s *DoctorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *DoctorScreen) View() string { return s.view() }

// Input returns the chosen doctor
func (s *DoctorScreen) Input() (booking.Input, error) {
	return booking.DoctorChoice{DoctorID: s.doctorID}, nil
}
