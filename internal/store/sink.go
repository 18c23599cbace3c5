package store

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mrsinham/hilom/internal/audit"
	"github.com/mrsinham/hilom/internal/booking"
)

// Sink implements booking.Saver.
type Sink struct {
	db      *Guarded
	history *audit.Log
	logger  zerolog.Logger
}

// NewSink builds a sink. db may be nil, in which case only the history log
// is written.
func NewSink(db *Guarded, history *audit.Log, logger zerolog.Logger) *Sink {
	return &Sink{db: db, history: history, logger: logger}
}

// SaveAppointment tries the database once, then always appends the history
// line. It never fails the booking.
func (s *Sink) SaveAppointment(ctx context.Context, appt booking.Appointment) booking.PersistenceResult {
	var res booking.PersistenceResult
	logger := s.logger.With().Str("appointment", appt.ID.String()).Logger()

	switch {
	case s.db == nil || !s.db.Available():
		res.Skipped = true
		logger.Info().Msg("database not available, appointment logged to history only")
	default:
		err := s.db.InsertAppointment(ctx, appt)
		switch {
		case errors.Is(err, ErrUnavailable):
			res.Skipped = true
		case err != nil:
			res.StoreErr = err
			logger.Warn().Err(err).Msg("failed to save appointment, logging to history only")
		default:
			res.Stored = true
			logger.Info().Msg("appointment saved")
		}
	}

	if _, err := s.history.Append(audit.CategoryAppointment, appt.Summary()); err != nil {
		res.AuditErr = err
		logger.Error().Err(err).Msg("failed to append appointment to history")
	} else {
		res.Audited = true
	}

	return res
}
