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

// HospitalListScreen lists the hospitals near the patient
type HospitalListScreen struct {
	formScreen
	hospitalID int
}

// NewHospitalListScreen creates the hospital list. selected preselects a
// hospital when coming back to this step.
func NewHospitalListScreen(hospitals []catalog.Hospital, selected int, city string) *HospitalListScreen {
	s := &HospitalListScreen{hospitalID: selected}
	if s.hospitalID == 0 && len(hospitals) > 0 {
		s.hospitalID = hospitals[0].ID
	}

	options := make([]huh.Option[int], len(hospitals))
	for i, h := range hospitals {
		options[i] = huh.NewOption(fmt.Sprintf("%s  ★ %.1f  %s", h.Name, h.Rating, h.Distance), h.ID)
	}

	subtitle := "Mental wellness centers near you."
	if city != "" {
		subtitle = fmt.Sprintf("Mental wellness centers near %s.", city)
	}

	s.formScreen = newFormScreen(booking.StateHospitalList, "HOSPITALS", subtitle, func() *huh.Form {
		return newForm(
			huh.NewSelect[int]().
				Key("hospital").
				Title("Choose a hospital").
				Options(options...).
				Value(&s.hospitalID),
		)
	})

	return s
}

// Update implements tea.Model
func (s *HospitalListScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *HospitalListScreen) View() string { return s.view() }

// Input returns the chosen hospital
func (s *HospitalListScreen) Input() (booking.Input, error) {
	return booking.HospitalChoice{HospitalID: s.hospitalID}, nil
}

// HospitalDetailScreen shows one hospital before choosing a doctor
type HospitalDetailScreen struct {
	formScreen
	hospital catalog.Hospital
	proceed  bool
}

// NewHospitalDetailScreen creates the detail page for h
func NewHospitalDetailScreen(h catalog.Hospital) *HospitalDetailScreen {
	s := &HospitalDetailScreen{hospital: h, proceed: true}

	s.formScreen = newFormScreen(booking.StateHospitalDetail, strings.ToUpper(h.Name), "", func() *huh.Form {
		return newForm(
			huh.NewConfirm().
				Key("view_doctors").
				Title("Book with this center?").
				Affirmative("View doctors").
				Negative("Back").
				Value(&s.proceed),
		)
	})

	return s
}

// Update implements tea.Model
func (s *HospitalDetailScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	if s.done && !s.proceed {
		s.done = false
		s.back = true
	}
	return s, cmd
}

// View implements tea.Model
func (s *HospitalDetailScreen) View() string {
	h := s.hospital
	details := components.PanelStyle.Render(strings.Join([]string{
		row("Address", h.Address),
		row("Rating", fmt.Sprintf("%.1f / 5", h.Rating)),
		row("Distance", h.Distance),
		row("Open", h.OpenHours),
	}, "\n"))
	return s.view(details, "")
}

// Input moves on to doctor selection
func (s *HospitalDetailScreen) Input() (booking.Input, error) {
	return booking.ViewDoctors{}, nil
}

func row(label, value string) string {
	return components.LabelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + components.ValueStyle.Render(value)
}
