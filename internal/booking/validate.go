package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrWrongStep is returned when an input does not belong to the current step.
var ErrWrongStep = errors.New("input does not match the current step")

// FieldError describes one field that blocks a step.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + " " + f.Message
}

// ValidationError lists the fields that keep a step from advancing.
type ValidationError struct {
	Step   State
	Fields []FieldError
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s: %s", e.Step, strings.Join(parts, "; "))
}

// FieldNames returns the names of the offending fields in order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}

// Input is an answer for one step of the booking flow.
type Input interface {
	step() State
}

// LocationInput answers the Location step.
type LocationInput struct {
	City     string
	Province string
	ZipCode  string
}

func (LocationInput) step() State { return StateLocation }

// Validate requires every location field.
func (in LocationInput) Validate() error {
	verr := &ValidationError{Step: StateLocation}
	requireText(verr, "City", in.City)
	requireText(verr, "Province", in.Province)
	requireText(verr, "Zip Code", in.ZipCode)
	return verr.orNil()
}

// HospitalChoice picks a hospital from the list and opens its detail.
type HospitalChoice struct {
	HospitalID int
}

func (HospitalChoice) step() State { return StateHospitalList }

// ViewDoctors moves from a hospital's detail to doctor selection.
type ViewDoctors struct{}

func (ViewDoctors) step() State { return StateHospitalDetail }

// DoctorChoice picks the doctor to book.
type DoctorChoice struct {
	DoctorID int
}

func (DoctorChoice) step() State { return StateDoctorSelect }

// PersonalInfoInput answers the PersonalInfo step. Age is kept as typed.
type PersonalInfoInput struct {
	Name    string
	Age     string
	Contact string
	Gender  Gender
	Address string
	Concern string
}

func (PersonalInfoInput) step() State { return StatePersonalInfo }

// Validate requires every text field and a positive whole-number age.
func (in PersonalInfoInput) Validate() error {
	verr := &ValidationError{Step: StatePersonalInfo}
	requireText(verr, "Name", in.Name)
	if filled(in.Age) {
		if _, err := parseAge(in.Age); err != nil {
			verr.add("Age", "must be a positive whole number")
		}
	} else {
		verr.add("Age", "is required")
	}
	requireText(verr, "Contact", in.Contact)
	requireText(verr, "Address", in.Address)
	requireText(verr, "Concern", in.Concern)
	return verr.orNil()
}

func parseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if age <= 0 {
		return 0, fmt.Errorf("age %d is not positive", age)
	}
	return age, nil
}

// ScheduleInput answers the Schedule step.
type ScheduleInput struct {
	Date time.Time
	Slot TimeSlot
}

func (ScheduleInput) step() State { return StateSchedule }

// Validate checks the date against floor (the day the step was shown) and
// requires one slot from the fixed set.
func (in ScheduleInput) Validate(floor time.Time) error {
	verr := &ValidationError{Step: StateSchedule}
	switch {
	case in.Date.IsZero():
		verr.add("Date", "is required")
	case DateOnly(in.Date).Before(DateOnly(floor)):
		verr.add("Date", "must be on or after "+FormatDate(floor))
	}
	switch {
	case in.Slot == "":
		verr.add("Time Slot", "is required")
	case !in.Slot.Valid():
		verr.add("Time Slot", fmt.Sprintf("%q is not an available slot", in.Slot))
	}
	return verr.orNil()
}

// ConsultationInput answers the ConsultationType step.
type ConsultationInput struct {
	Type ConsultationType
}

func (ConsultationInput) step() State { return StateConsultationType }

// Validate requires one of the two consultation types.
func (in ConsultationInput) Validate() error {
	verr := &ValidationError{Step: StateConsultationType}
	if in.Type != ConsultationOnline && in.Type != ConsultationFaceToFace {
		verr.add("Consultation Type", "is required")
	}
	return verr.orNil()
}

// Accept confirms the booking on the Confirmation step.
type Accept struct{}

func (Accept) step() State { return StateConfirmation }

func requireText(verr *ValidationError, field, value string) {
	if !filled(value) {
		verr.add(field, "is required")
	}
}
