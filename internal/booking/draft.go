package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mrsinham/hilom/internal/catalog"
)

// Draft accumulates the answers of the booking steps. It lives only inside
// a Machine and is discarded when the flow ends or is abandoned.
type Draft struct {
	City     string
	Province string
	ZipCode  string

	HospitalID int
	DoctorID   int

	Name    string
	Age     int
	Contact string
	Gender  Gender
	Address string
	Concern string

	Date time.Time
	Slot TimeSlot

	Consultation ConsultationType
	Price        int
}

// Missing lists the required fields that are still unset, by display name.
func (d Draft) Missing() []string {
	var missing []string
	add := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}

	add(filled(d.City), "City")
	add(filled(d.Province), "Province")
	add(filled(d.ZipCode), "Zip Code")
	add(d.HospitalID != 0, "Hospital")
	add(d.DoctorID != 0, "Doctor")
	add(filled(d.Name), "Name")
	add(d.Age > 0, "Age")
	add(filled(d.Contact), "Contact")
	add(filled(d.Address), "Address")
	add(filled(d.Concern), "Concern")
	add(!d.Date.IsZero(), "Date")
	add(d.Slot.Valid(), "Time Slot")
	add(d.Consultation != ConsultationNone, "Consultation Type")
	add(d.Price > 0 && d.Price == d.Consultation.Price(), "Price")

	return missing
}

// Appointment is a finalized booking, built once at the accept step.
type Appointment struct {
	ID uuid.UUID

	PatientName string
	Age         int
	Contact     string
	Gender      Gender
	Address     string
	Concern     string

	Hospital catalog.Hospital
	Doctor   catalog.Doctor

	Date time.Time
	Slot TimeSlot

	Consultation ConsultationType
	Price        int

	CreatedAt time.Time
}

// NewAppointment checks that every required field of d is populated and
// resolves the catalog references. It is the only place presence is enforced
// for the record as a whole.
func NewAppointment(d Draft, cat *catalog.Catalog, now time.Time) (Appointment, error) {
	if missing := d.Missing(); len(missing) > 0 {
		verr := &ValidationError{Step: StateConfirmation}
		for _, name := range missing {
			verr.add(name, "is required")
		}
		return Appointment{}, verr
	}

	return Appointment{
		ID:           uuid.New(),
		PatientName:  strings.TrimSpace(d.Name),
		Age:          d.Age,
		Contact:      strings.TrimSpace(d.Contact),
		Gender:       d.Gender,
		Address:      strings.TrimSpace(d.Address),
		Concern:      strings.TrimSpace(d.Concern),
		Hospital:     cat.MustHospital(d.HospitalID),
		Doctor:       cat.MustDoctor(d.DoctorID),
		Date:         DateOnly(d.Date),
		Slot:         d.Slot,
		Consultation: d.Consultation,
		Price:        d.Price,
		CreatedAt:    now,
	}, nil
}

// Summary is the one-line description written to the history log.
func (a Appointment) Summary() string {
	return fmt.Sprintf("Appointment for %s - %s - $%d", a.PatientName, a.Consultation, a.Price)
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
