package screens

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/internal/booking"
)

// ScheduleScreen picks the date and one of the offered time slots
type ScheduleScreen struct {
	formScreen
	floor  time.Time
	date   string
	slot   booking.TimeSlot
	picker *booking.SlotPicker
}

// NewScheduleScreen creates the schedule step. floor is the earliest date
// the machine accepts; offered are the slots shown as buttons.
func NewScheduleScreen(d booking.Draft, floor time.Time, offered []booking.TimeSlot) *ScheduleScreen {
	s := &ScheduleScreen{
		floor:  floor,
		date:   booking.FormatDate(floor),
		picker: booking.NewSlotPicker(offered),
	}
	if !d.Date.IsZero() && !d.Date.Before(floor) {
		s.date = booking.FormatDate(d.Date)
	}
	if s.picker.Select(d.Slot) {
		s.slot = d.Slot
	} else if len(offered) > 0 {
		s.slot = offered[0]
		s.picker.Select(s.slot)
	}

	options := make([]huh.Option[booking.TimeSlot], len(offered))
	for i, slot := range offered {
		options[i] = huh.NewOption(string(slot), slot)
	}

	s.formScreen = newFormScreen(booking.StateSchedule, "SCHEDULE", "Pick a day and a time.", func() *huh.Form {
		return newForm(
			huh.NewInput().
				Key("date").
				Title("Date").
				Description("YYYY-MM-DD, on or after "+booking.FormatDate(s.floor)).
				Value(&s.date),
			huh.NewSelect[booking.TimeSlot]().
				Key("time_slot").
				Title("Time Slot").
				Options(options...).
				Value(&s.slot),
		)
	})

	return s
}

// Update implements tea.Model
func (s *ScheduleScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	s.picker.Select(s.slot)
	return s, cmd
}

// View implements tea.Model
func (s *ScheduleScreen) View() string { return s.view() }

// Input returns the chosen date and slot. A date that cannot be read is
// reported on the Date field.
func (s *ScheduleScreen) Input() (booking.Input, error) {
	slot, _ := s.picker.Selected()

	raw := strings.TrimSpace(s.date)
	if raw == "" {
		return booking.ScheduleInput{Slot: slot}, nil
	}

	date, err := booking.ParseDate(raw, s.floor.Location())
	if err != nil {
		return nil, fieldError(booking.StateSchedule, "Date", "must be a date like %s", booking.FormatDate(s.floor))
	}
	return booking.ScheduleInput{Date: date, Slot: slot}, nil
}
