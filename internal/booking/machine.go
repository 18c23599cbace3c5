// Package booking implements the appointment booking flow as a UI-free,
// linear state machine.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/mrsinham/hilom/internal/catalog"
)

// State is one step of the booking flow.
type State int

const (
	StateLocation State = iota
	StateHospitalList
	StateHospitalDetail
	StateDoctorSelect
	StatePersonalInfo
	StateSchedule
	StateConsultationType
	StateConfirmation
	StateDone
)

func (s State) String() string {
	switch s {
	case StateLocation:
		return "location"
	case StateHospitalList:
		return "hospital list"
	case StateHospitalDetail:
		return "hospital detail"
	case StateDoctorSelect:
		return "doctor selection"
	case StatePersonalInfo:
		return "personal info"
	case StateSchedule:
		return "schedule"
	case StateConsultationType:
		return "consultation type"
	case StateConfirmation:
		return "confirmation"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PersistenceResult reports what happened to a finalized appointment.
type PersistenceResult struct {
	// Stored is true when the relational store accepted the appointment.
	Stored bool
	// Skipped is true when no store attempt was made (none configured, or
	// marked unavailable earlier in the process).
	Skipped bool
	// StoreErr is the store failure, if the attempt failed.
	StoreErr error
	// Audited is true when the history line was appended.
	Audited bool
	// AuditErr is the history append failure, if any.
	AuditErr error
}

// Saver records a finalized appointment. Implementations never fail the
// booking: problems are reported in the result.
type Saver interface {
	SaveAppointment(ctx context.Context, appt Appointment) PersistenceResult
}

// Machine drives one booking from Location to Done.
// It is not safe for concurrent use.
type Machine struct {
	catalog *catalog.Catalog
	saver   Saver
	now     func() time.Time

	state State
	draft Draft

	scheduleFloor time.Time

	booked *Appointment
	result *PersistenceResult
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock overrides the clock used for the schedule floor and timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// NewMachine starts a booking at the Location step.
func NewMachine(cat *catalog.Catalog, saver Saver, opts ...Option) *Machine {
	m := &Machine{
		catalog: cat,
		saver:   saver,
		now:     time.Now,
		state:   StateLocation,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the current step.
func (m *Machine) Current() State { return m.state }

// Draft returns a copy of the answers collected so far.
func (m *Machine) Draft() Draft { return m.draft }

// Catalog returns the catalog the machine resolves ids against.
func (m *Machine) Catalog() *catalog.Catalog { return m.catalog }

// ScheduleFloor is the earliest bookable date. It is fixed when the Schedule
// step is entered and is the zero time before that.
func (m *Machine) ScheduleFloor() time.Time { return m.scheduleFloor }

// Hospital returns the hospital bound to the draft, if any.
func (m *Machine) Hospital() (catalog.Hospital, bool) {
	if m.draft.HospitalID == 0 {
		return catalog.Hospital{}, false
	}
	return m.catalog.MustHospital(m.draft.HospitalID), true
}

// Result returns the outcome of the accept step once the flow is Done.
func (m *Machine) Result() (PersistenceResult, bool) {
	if m.result == nil {
		return PersistenceResult{}, false
	}
	return *m.result, true
}

// Booked returns the appointment created by the accept step.
func (m *Machine) Booked() (Appointment, bool) {
	if m.booked == nil {
		return Appointment{}, false
	}
	return *m.booked, true
}

// Advance submits the answer for the current step. On success the draft is
// updated and the machine moves forward. On failure neither the step nor the
// draft changes and the returned error is a *ValidationError (or
// ErrWrongStep for an input meant for another step).
func (m *Machine) Advance(ctx context.Context, in Input) error {
	if m.state == StateDone || in == nil || in.step() != m.state {
		return fmt.Errorf("%w: at %s", ErrWrongStep, m.state)
	}

	switch in := in.(type) {
	case LocationInput:
		if err := in.Validate(); err != nil {
			return err
		}
		m.draft.City = in.City
		m.draft.Province = in.Province
		m.draft.ZipCode = in.ZipCode
		m.state = StateHospitalList

	case HospitalChoice:
		// Re-entering detail replaces the previous binding.
		h := m.catalog.MustHospital(in.HospitalID)
		m.draft.HospitalID = h.ID
		m.state = StateHospitalDetail

	case ViewDoctors:
		m.state = StateDoctorSelect

	case DoctorChoice:
		d := m.catalog.MustDoctor(in.DoctorID)
		m.draft.DoctorID = d.ID
		m.state = StatePersonalInfo

	case PersonalInfoInput:
		if err := in.Validate(); err != nil {
			return err
		}
		age, _ := parseAge(in.Age)
		m.draft.Name = in.Name
		m.draft.Age = age
		m.draft.Contact = in.Contact
		m.draft.Gender = in.Gender
		m.draft.Address = in.Address
		m.draft.Concern = in.Concern
		m.enterSchedule()

	case ScheduleInput:
		if err := in.Validate(m.scheduleFloor); err != nil {
			return err
		}
		m.draft.Date = DateOnly(in.Date)
		m.draft.Slot = in.Slot
		m.state = StateConsultationType

	case ConsultationInput:
		if err := in.Validate(); err != nil {
			return err
		}
		m.draft.Consultation = in.Type
		m.draft.Price = in.Type.Price()
		m.state = StateConfirmation

	case Accept:
		return m.accept(ctx)
	}

	return nil
}

func (m *Machine) enterSchedule() {
	m.scheduleFloor = DateOnly(m.now())
	m.state = StateSchedule
}

func (m *Machine) accept(ctx context.Context) error {
	appt, err := NewAppointment(m.draft, m.catalog, m.now())
	if err != nil {
		return err
	}

	res := m.saver.SaveAppointment(ctx, appt)
	m.booked = &appt
	m.result = &res
	m.draft = Draft{}
	m.state = StateDone
	return nil
}

// Back returns to the previous step without touching the draft.
// It reports false when there is nothing to go back to.
func (m *Machine) Back() bool {
	switch m.state {
	case StateLocation, StateDone:
		return false
	case StateConsultationType:
		// Coming back to Schedule shows it again, so the floor is refreshed.
		m.enterSchedule()
		return true
	}
	m.state--
	return true
}
