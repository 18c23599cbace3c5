package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/internal/booking"
)

// LocationScreen asks where the patient is.
type LocationScreen struct {
	formScreen
	city     string
	province string
	zipCode  string
}

// NewLocationScreen creates the location step, prefilled from d
func NewLocationScreen(d booking.Draft) *LocationScreen {
	s := &LocationScreen{city: d.City, province: d.Province, zipCode: d.ZipCode}

	s.formScreen = newFormScreen(booking.StateLocation, "FIND A CLINIC NEAR YOU", "Tell us where you are.", func() *huh.Form {
		return newForm(
			huh.NewInput().
				Key("city").
				Title("City").
				Value(&s.city),
			huh.NewInput().
				Key("province").
				Title("Province").
				Value(&s.province),
			huh.NewInput().
				Key("zip_code").
				Title("Zip Code").
				Value(&s.zipCode),
		)
	})

	return s
}

// Update implements tea.Model
func (s *LocationScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *LocationScreen) View() string { return s.view() }

// Input returns the location entered
func (s *LocationScreen) Input() (booking.Input, error) {
	return booking.LocationInput{City: s.city, Province: s.province, ZipCode: s.zipCode}, nil
}
