// Package admin assembles the administrator overview.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mrsinham/hilom/internal/account"
	"github.com/mrsinham/hilom/internal/audit"
	"github.com/mrsinham/hilom/internal/store"
)

// ErrNotAdmin is returned when a non-admin asks for the overview.
var ErrNotAdmin = errors.New("account is not an administrator")

// Appointment sources.
const (
	SourceDatabase = "database"
	SourceHistory  = "history"
)

const notAvailable = "N/A"

// RecentLimit is how many history entries the overview keeps.
const RecentLimit = 20

// AppointmentRow is one line of the appointments table.
type AppointmentRow struct {
	PatientName  string
	Schedule     string
	TimeSlot     string
	Consultation string
	Price        string
	Contact      string
	Concern      string
	Status       string
}

// Overview is what the admin screen shows.
type Overview struct {
	Appointments []AppointmentRow
	Source       string
	Users        []account.User
	// Recent holds the last RecentLimit history entries of any category,
	// oldest first.
	Recent []audit.Entry
}

// Service builds overviews. Appointments is nil when no database is set up.
type Service struct {
	Appointments store.AppointmentLister
	History      *audit.Log
	Accounts     *account.Store
	Logger       zerolog.Logger
}

// Overview returns the overview for u, who must be an administrator.
// Appointments come from the database, or from the history log when the
// database cannot be read.
func (s *Service) Overview(ctx context.Context, u account.User) (Overview, error) {
	if !u.Admin {
		return Overview{}, ErrNotAdmin
	}

	var ov Overview
	rows, err := s.fromDatabase(ctx)
	if err != nil {
		s.Logger.Warn().Err(err).Msg("failed to load appointments, falling back to history")
	}
	if rows != nil {
		ov.Appointments, ov.Source = rows, SourceDatabase
	} else {
		rows, err := s.fromHistory()
		if err != nil {
			return Overview{}, err
		}
		ov.Appointments, ov.Source = rows, SourceHistory
	}

	users, err := s.Accounts.List()
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load users: %w", err)
	}
	ov.Users = users

	entries, err := s.History.Entries()
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) > RecentLimit {
		entries = entries[len(entries)-RecentLimit:]
	}
	ov.Recent = entries

	return ov, nil
}

func (s *Service) fromDatabase(ctx context.Context) ([]AppointmentRow, error) {
	if s.Appointments == nil {
		return nil, nil
	}

	records, err := s.Appointments.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]AppointmentRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, AppointmentRow{
			PatientName:  r.PatientName,
			Schedule:     r.Schedule.Format("2006-01-02"),
			TimeSlot:     r.TimeSlot,
			Consultation: r.ConsultationType,
			Price:        "$" + strconv.Itoa(r.Price),
			Contact:      r.Contact,
			Concern:      r.Concern,
			Status:       "Active",
		})
	}
	return rows, nil
}

func (s *Service) fromHistory() ([]AppointmentRow, error) {
	entries, err := s.History.ByCategory(audit.CategoryAppointment)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	rows := make([]AppointmentRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, AppointmentRow{
			PatientName:  e.Item,
			Schedule:     e.Date,
			TimeSlot:     notAvailable,
			Consultation: notAvailable,
			Price:        notAvailable,
			Contact:      notAvailable,
			Concern:      notAvailable,
			Status:       "Logged",
		})
	}
	return rows, nil
}
