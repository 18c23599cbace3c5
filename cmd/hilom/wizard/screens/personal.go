package screens

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/internal/booking"
)

// PersonalScreen collects the patient's details
type PersonalScreen struct {
	formScreen
	name    string
	age     string
	contact string
	gender  booking.Gender
	address string
	concern string
}

// NewPersonalScreen creates the personal info step, prefilled from d
func NewPersonalScreen(d booking.Draft) *PersonalScreen {
	s := &PersonalScreen{
		name:    d.Name,
		contact: d.Contact,
		gender:  d.Gender,
		address: d.Address,
		concern: d.Concern,
	}
	if d.Age > 0 {
		s.age = strconv.Itoa(d.Age)
	}

	s.formScreen = newFormScreen(booking.StatePersonalInfo, "PERSONAL INFORMATION", "Who is the appointment for?", func() *huh.Form {
		return newForm(
			huh.NewInput().
				Key("name").
				Title("Full Name").
				Value(&s.name),
			huh.NewInput().
				Key("age").
				Title("Age").
				Value(&s.age),
			huh.NewInput().
				Key("contact").
				Title("Contact Number").
				Value(&s.contact),
			huh.NewSelect[booking.Gender]().
				Key("gender").
				Title("Gender").
				Options(
					huh.NewOption(booking.GenderUnspecified.String(), booking.GenderUnspecified),
					huh.NewOption(booking.GenderMale.String(), booking.GenderMale),
					huh.NewOption(booking.GenderFemale.String(), booking.GenderFemale),
					huh.NewOption(booking.GenderOther.String(), booking.GenderOther),
				).
				Value(&s.gender),
			huh.NewInput().
				Key("address").
				Title("Address").
				Value(&s.address),
			huh.NewText().
				Key("concern").
				Title("Concern").
				Lines(3).
				Value(&s.concern),
		)
	})

	return s
}

// Update implements tea.Model
func (s *PersonalScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *PersonalScreen) View() string { return s.view() }

// Input returns the details as typed
func (s *PersonalScreen) Input() (booking.Input, error) {
	return booking.PersonalInfoInput{
		Name:    s.name,
		Age:     s.age,
		Contact: s.contact,
		Gender:  s.gender,
		Address: s.address,
		Concern: s.concern,
	}, nil
}
