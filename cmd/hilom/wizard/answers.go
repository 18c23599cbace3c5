package wizard

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mrsinham/hilom/internal/booking"
	"gopkg.in/yaml.v3"
)

// Answers is a booking written down as YAML, so it can be replayed without
// a terminal.
type Answers struct {
	Location     LocationAnswers `yaml:"location"`
	HospitalID   int             `yaml:"hospital_id"`
	DoctorID     int             `yaml:"doctor_id"`
	Patient      PatientAnswers  `yaml:"patient"`
	Schedule     ScheduleAnswers `yaml:"schedule"`
	Consultation string          `yaml:"consultation"`
}

// LocationAnswers holds the location step.
type LocationAnswers struct {
	City     string `yaml:"city"`
	Province string `yaml:"province"`
	ZipCode  string `yaml:"zip_code"`
}

// PatientAnswers holds the personal info step. Age is kept as written so
// the same rules apply as on screen.
type PatientAnswers struct {
	Name    string `yaml:"name"`
	Age     string `yaml:"age"`
	Contact string `yaml:"contact"`
	Gender  string `yaml:"gender,omitempty"`
	Address string `yaml:"address"`
	Concern string `yaml:"concern"`
}

// ScheduleAnswers holds the schedule step. Date accepts "today", "+Nd" or
// YYYY-MM-DD.
type ScheduleAnswers struct {
	Date     string `yaml:"date"`
	TimeSlot string `yaml:"time_slot"`
}

// LoadAnswers reads answers from a YAML file.
func LoadAnswers(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}

	var a Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	return &a, nil
}

// SaveAnswers writes answers to a YAML file.
func SaveAnswers(path string, a *Answers) error {
	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing answers: %w", err)
	}
	return nil
}

// AnswersFromAppointment captures a booked appointment so it can be booked
// again.
func AnswersFromAppointment(appt booking.Appointment, loc LocationAnswers) *Answers {
	return &Answers{
		Location:   loc,
		HospitalID: appt.Hospital.ID,
		DoctorID:   appt.Doctor.ID,
		Patient: PatientAnswers{
			Name:    appt.PatientName,
			Age:     strconv.Itoa(appt.Age),
			Contact: appt.Contact,
			Gender:  appt.Gender.String(),
			Address: appt.Address,
			Concern: appt.Concern,
		},
		Schedule: ScheduleAnswers{
			Date:     booking.FormatDate(appt.Date),
			TimeSlot: string(appt.Slot),
		},
		Consultation: appt.Consultation.String(),
	}
}

// RunAnswers walks m from its current step to Done using a. The first step
// that refuses its answer stops the run; nothing is saved in that case.
func RunAnswers(ctx context.Context, m *booking.Machine, a *Answers, now time.Time) (booking.Appointment, error) {
	cat := m.Catalog()
	if _, ok := cat.Hospital(a.HospitalID); !ok {
		return booking.Appointment{}, fmt.Errorf("unknown hospital id %d", a.HospitalID)
	}
	if _, ok := cat.Doctor(a.DoctorID); !ok {
		return booking.Appointment{}, fmt.Errorf("unknown doctor id %d", a.DoctorID)
	}

	gender, err := booking.ParseGender(a.Patient.Gender)
	if err != nil {
		return booking.Appointment{}, err
	}

	inputs := []func() (booking.Input, error){
		func() (booking.Input, error) {
			return booking.LocationInput{
				City:     a.Location.City,
				Province: a.Location.Province,
				ZipCode:  a.Location.ZipCode,
			}, nil
		},
		func() (booking.Input, error) { return booking.HospitalChoice{HospitalID: a.HospitalID}, nil },
		func() (booking.Input, error) { return booking.ViewDoctors{}, nil },
		func() (booking.Input, error) { return booking.DoctorChoice{DoctorID: a.DoctorID}, nil },
		func() (booking.Input, error) {
			return booking.PersonalInfoInput{
				Name:    a.Patient.Name,
				Age:     a.Patient.Age,
				Contact: a.Patient.Contact,
				Gender:  gender,
				Address: a.Patient.Address,
				Concern: a.Patient.Concern,
			}, nil
		},
		func() (booking.Input, error) {
			var date time.Time
			if strings.TrimSpace(a.Schedule.Date) != "" {
				d, err := ResolveDate(a.Schedule.Date, now)
				if err != nil {
					return nil, err
				}
				date = d
			}
			return booking.ScheduleInput{Date: date, Slot: booking.TimeSlot(a.Schedule.TimeSlot)}, nil
		},
		func() (booking.Input, error) {
			kind, err := booking.ParseConsultationType(a.Consultation)
			if err != nil {
				return nil, err
			}
			return booking.ConsultationInput{Type: kind}, nil
		},
		func() (booking.Input, error) { return booking.Accept{}, nil },
	}

	for _, next := range inputs {
		step := m.Current()
		in, err := next()
		if err != nil {
			return booking.Appointment{}, fmt.Errorf("%s: %w", step, err)
		}
		if err := m.Advance(ctx, in); err != nil {
			return booking.Appointment{}, err
		}
	}

	appt, _ := m.Booked()
	return appt, nil
}

// ResolveDate reads "today", "+Nd" (N days from now) or YYYY-MM-DD in now's
// location.
func ResolveDate(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	today := booking.DateOnly(now)

	switch {
	case s == "today":
		return today, nil
	case strings.HasPrefix(s, "+") && strings.HasSuffix(s, "d"):
		n, err := strconv.Atoi(s[1 : len(s)-1])
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("invalid relative date: %s (expected +Nd)", s)
		}
		return today.AddDate(0, 0, n), nil
	}

	d, err := booking.ParseDate(s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s (expected YYYY-MM-DD, today or +Nd)", s)
	}
	return d, nil
}
