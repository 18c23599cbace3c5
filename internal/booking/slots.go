package booking

import (
	"math/rand/v2"
	"slices"
	"time"
)

// TimeSlot is one of the fixed hourly appointment slots.
type TimeSlot string

// AllTimeSlots lists every bookable slot in day order.
var AllTimeSlots = []TimeSlot{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
}

// offeredSlotCount is how many slots the schedule step shows at once.
const offeredSlotCount = 6

// Valid reports whether s is one of AllTimeSlots.
func (s TimeSlot) Valid() bool {
	return slices.Contains(AllTimeSlots, s)
}

// OfferedSlots picks the slots to show on the schedule step: a random sample
// of six, returned in day order.
func OfferedSlots(rng *rand.Rand) []TimeSlot {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	idx := rng.Perm(len(AllTimeSlots))[:offeredSlotCount]
	slices.Sort(idx)

	out := make([]TimeSlot, len(idx))
	for i, j := range idx {
		out[i] = AllTimeSlots[j]
	}
	return out
}

// SlotPicker models the slot buttons: at most one slot is selected, and
// selecting another slot replaces the previous choice.
type SlotPicker struct {
	offered  []TimeSlot
	selected TimeSlot
}

// NewSlotPicker creates a picker over the given slots.
func NewSlotPicker(offered []TimeSlot) *SlotPicker {
	return &SlotPicker{offered: append([]TimeSlot(nil), offered...)}
}

// Offered returns the slots the picker exposes.
func (p *SlotPicker) Offered() []TimeSlot {
	return append([]TimeSlot(nil), p.offered...)
}

// Select makes s the only selected slot. Slots that are not offered are
// ignored and the current selection is kept.
func (p *SlotPicker) Select(s TimeSlot) bool {
	if !slices.Contains(p.offered, s) {
		return false
	}
	p.selected = s
	return true
}

// Selected returns the selected slot, if any.
func (p *SlotPicker) Selected() (TimeSlot, bool) {
	return p.selected, p.selected != ""
}

// IsSelected reports whether s is the current selection.
func (p *SlotPicker) IsSelected(s TimeSlot) bool {
	return p.selected != "" && p.selected == s
}

// Dates

const dateLayout = "2006-01-02"

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(dateLayout, s, loc)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
