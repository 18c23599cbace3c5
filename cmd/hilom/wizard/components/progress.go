package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/hilom/internal/booking"
)

var (
	stepDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stepCurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	stepTodoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// bookingSteps are the steps shown in the breadcrumb. Hospital detail is
// folded into the hospital step.
var bookingSteps = []struct {
	label  string
	states []booking.State
}{
	{"Location", []booking.State{booking.StateLocation}},
	{"Hospital", []booking.State{booking.StateHospitalList, booking.StateHospitalDetail}},
	{"Doctor", []booking.State{booking.StateDoctorSelect}},
	{"Details", []booking.State{booking.StatePersonalInfo}},
	{"Schedule", []booking.State{booking.StateSchedule}},
	{"Type", []booking.State{booking.StateConsultationType}},
	{"Confirm", []booking.State{booking.StateConfirmation}},
}

// Steps renders the booking breadcrumb with current highlighted.
func Steps(current booking.State) string {
	parts := make([]string, len(bookingSteps))
	for i, step := range bookingSteps {
		first, last := step.states[0], step.states[len(step.states)-1]
		label := fmt.Sprintf("%d %s", i+1, step.label)
		switch {
		case current > last:
			parts[i] = stepDoneStyle.Render(label)
		case current >= first:
			parts[i] = stepCurrentStyle.Render("[" + label + "]")
		default:
			parts[i] = stepTodoStyle.Render(label)
		}
	}
	return strings.Join(parts, stepTodoStyle.Render(" > "))
}
