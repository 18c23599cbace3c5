// Package store records finalized appointments: a best-effort relational
// insert guarded by a circuit breaker, and an always-on history line.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/mrsinham/hilom/internal/booking"
)

// ErrUnavailable is returned once the database has been marked unavailable
// for the rest of the process.
var ErrUnavailable = errors.New("database unavailable")

// PersistenceClient inserts appointments into durable storage.
type PersistenceClient interface {
	InsertAppointment(ctx context.Context, appt booking.Appointment) error
}

// AppointmentLister reads stored appointments back, newest first.
type AppointmentLister interface {
	ListAppointments(ctx context.Context) ([]AppointmentRecord, error)
}

// AppointmentRecord is an appointment row as the admin overview shows it.
type AppointmentRecord struct {
	PatientName      string
	Schedule         time.Time
	TimeSlot         string
	ConsultationType string
	Price            int
	Contact          string
	Concern          string
}
