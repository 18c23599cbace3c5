package screens

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/hilom/internal/booking"
	"github.com/mrsinham/hilom/internal/catalog"
)

var floor = time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

func TestLocationScreen_Prefilled(t *testing.T) {
	s := NewLocationScreen(booking.Draft{City: "Nasugbu", Province: "Batangas", ZipCode: "4231"})

	in, err := s.Input()
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	want := booking.LocationInput{City: "Nasugbu", Province: "Batangas", ZipCode: "4231"}
	if in != want {
		t.Errorf("Expected %+v, got %+v", want, in)
	}
}

func TestFormScreen_Keys(t *testing.T) {
	s := NewLocationScreen(booking.Draft{})
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !s.Back() {
		t.Error("Expected esc to ask for the previous step")
	}
	if s.Done() || s.Cancelled() {
		t.Error("Expected esc to neither submit nor cancel")
	}

	s = NewLocationScreen(booking.Draft{})
	s.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !s.Cancelled() {
		t.Error("Expected ctrl+c to cancel")
	}
	if s.View() != "Cancelled.\n" {
		t.Errorf("Unexpected view after cancel: %q", s.View())
	}
}

func TestFormScreen_RejectKeepsValues(t *testing.T) {
	s := NewPersonalScreen(booking.Draft{Name: "Jane Doe", Age: 34, Concern: "sleep"})
	s.done = true

	verr := &booking.ValidationError{Step: booking.StatePersonalInfo, Fields: []booking.FieldError{{Field: "Contact", Message: "is required"}}}
	s.Reject(verr)

	if s.Done() {
		t.Error("Expected rejected screen to be editable again")
	}
	if !errors.Is(s.Err(), verr) {
		t.Errorf("Expected error kept for display, got %v", s.Err())
	}

	in, _ := s.Input()
	got := in.(booking.PersonalInfoInput)
	if got.Name != "Jane Doe" || got.Age != "34" || got.Concern != "sleep" {
		t.Errorf("Expected values kept, got %+v", got)
	}
}

func TestPersonalScreen_EmptyAge(t *testing.T) {
	s := NewPersonalScreen(booking.Draft{})
	in, _ := s.Input()
	if got := in.(booking.PersonalInfoInput); got.Age != "" {
		t.Errorf("Expected empty age, got %q", got.Age)
	}
}

func TestScheduleScreen_Defaults(t *testing.T) {
	offered := []booking.TimeSlot{"9:00 AM", "11:00 AM", "2:00 PM"}

	s := NewScheduleScreen(booking.Draft{}, floor, offered)
	in, err := s.Input()
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	got := in.(booking.ScheduleInput)
	if !got.Date.Equal(floor) {
		t.Errorf("Expected date to default to the floor, got %s", got.Date)
	}
	if got.Slot != "9:00 AM" {
		t.Errorf("Expected first offered slot, got %s", got.Slot)
	}
	if err := got.Validate(floor); err != nil {
		t.Errorf("Expected untouched schedule to be accepted, got %v", err)
	}

	past := booking.Draft{Date: floor.AddDate(0, 0, -3), Slot: "2:00 PM"}
	s = NewScheduleScreen(past, floor, offered)
	in, _ = s.Input()
	got = in.(booking.ScheduleInput)
	if !got.Date.Equal(floor) {
		t.Errorf("Expected a past draft date to be replaced by the floor, got %s", got.Date)
	}
	if got.Slot != "2:00 PM" {
		t.Errorf("Expected draft slot kept, got %s", got.Slot)
	}
}

func TestScheduleScreen_UnreadableDate(t *testing.T) {
	s := NewScheduleScreen(booking.Draft{}, floor, []booking.TimeSlot{"9:00 AM"})
	s.date = "next friday"

	_, err := s.Input()
	var verr *booking.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if strings.Join(verr.FieldNames(), ",") != "Date" {
		t.Errorf("Expected Date field, got %v", verr.FieldNames())
	}

	s.date = "  "
	in, err := s.Input()
	if err != nil {
		t.Fatalf("Expected empty date to reach the machine, got %v", err)
	}
	if !in.(booking.ScheduleInput).Date.IsZero() {
		t.Error("Expected zero date for empty input")
	}
}

func TestConsultationScreen(t *testing.T) {
	in, _ := NewConsultationScreen(booking.Draft{}).Input()
	got := in.(booking.ConsultationInput)
	if got.Type != booking.ConsultationNone {
		t.Errorf("Expected no type chosen by default, got %s", got.Type)
	}
	if err := got.Validate(); err == nil {
		t.Error("Expected an unchosen type to be rejected")
	}

	in, _ = NewConsultationScreen(booking.Draft{Consultation: booking.ConsultationFaceToFace}).Input()
	if got := in.(booking.ConsultationInput).Type; got != booking.ConsultationFaceToFace {
		t.Errorf("Expected face-to-face kept, got %s", got)
	}
}

func TestHospitalScreens(t *testing.T) {
	cat := catalog.Default()

	list := NewHospitalListScreen(cat.Hospitals(), 0, "Nasugbu")
	in, _ := list.Input()
	if got := in.(booking.HospitalChoice).HospitalID; got != cat.Hospitals()[0].ID {
		t.Errorf("Expected first hospital preselected, got %d", got)
	}

	list = NewHospitalListScreen(cat.Hospitals(), 3, "")
	in, _ = list.Input()
	if got := in.(booking.HospitalChoice).HospitalID; got != 3 {
		t.Errorf("Expected hospital 3 kept, got %d", got)
	}

	detail := NewHospitalDetailScreen(cat.MustHospital(1))
	if in, _ := detail.Input(); in != (booking.ViewDoctors{}) {
		t.Errorf("Expected ViewDoctors, got %#v", in)
	}
}

func TestHospitalDetailScreen_DeclineGoesBack(t *testing.T) {
	s := NewHospitalDetailScreen(catalog.Default().MustHospital(1))
	s.proceed = false
	s.form.State = huh.StateCompleted

	s.Update(struct{}{})

	if s.Done() {
		t.Error("Expected declining not to submit")
	}
	if !s.Back() {
		t.Error("Expected declining to go back")
	}
}

func TestDoctorScreen_KeepsOrderAndSelection(t *testing.T) {
	doctors := catalog.Default().Doctors()
	doctors[0], doctors[2] = doctors[2], doctors[0]

	in, _ := NewDoctorScreen(doctors, 0, "We Care Hospital").Input()
	if got := in.(booking.DoctorChoice).DoctorID; got != doctors[0].ID {
		t.Errorf("Expected first listed doctor, got %d", got)
	}

	in, _ = NewDoctorScreen(doctors, 2, "We Care Hospital").Input()
	if got := in.(booking.DoctorChoice).DoctorID; got != 2 {
		t.Errorf("Expected doctor 2 kept, got %d", got)
	}
}

func TestReview(t *testing.T) {
	d := booking.Draft{
		Name:         "Jane Doe",
		Age:          34,
		HospitalID:   1,
		DoctorID:     2,
		Date:         floor,
		Slot:         "10:00 AM",
		Consultation: booking.ConsultationOnline,
		Price:        100,
	}

	out := Review(d, catalog.Default())
	for _, want := range []string{"Jane Doe", "South Haven Mental Wellness Center", "Ms Larah Velasco", "2025-12-20", "10:00 AM", "Online", "$100"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected review to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCompletionScreen(t *testing.T) {
	cat := catalog.Default()
	appt := booking.Appointment{
		PatientName:  "Jane Doe",
		Hospital:     cat.MustHospital(1),
		Doctor:       cat.MustDoctor(2),
		Date:         floor,
		Slot:         "10:00 AM",
		Consultation: booking.ConsultationOnline,
		Price:        100,
	}

	s := NewCompletionScreen(appt)
	view := s.View()
	if !strings.Contains(view, "Appointment booked") || !strings.Contains(view, "Jane Doe") {
		t.Errorf("Unexpected completion view:\n%s", view)
	}
	if s.Done() {
		t.Error("Expected completion to wait for a key")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !s.Done() {
		t.Error("Expected any key to dismiss the completion page")
	}
}
