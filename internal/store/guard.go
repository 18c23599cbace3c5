package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/mrsinham/hilom/internal/booking"
)

// openInterval keeps the breaker open for longer than any session: once the
// database fails it is never tried again by this process.
const openInterval = 100 * 365 * 24 * time.Hour

// Guarded wraps a PersistenceClient with a circuit breaker that opens on the
// first failure and stays open.
type Guarded struct {
	client PersistenceClient
	cb     *gobreaker.CircuitBreaker
}

// NewGuarded wraps client. State changes are logged on logger.
func NewGuarded(name string, client PersistenceClient, logger zerolog.Logger) *Guarded {
	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openInterval,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.TotalFailures > 0
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("persistence availability changed")
		},
	}

	return &Guarded{client: client, cb: gobreaker.NewCircuitBreaker(st)}
}

// Available reports whether the next insert will reach the database.
func (g *Guarded) Available() bool {
	return g.cb.State() != gobreaker.StateOpen
}

// InsertAppointment forwards to the wrapped client unless the breaker is
// open, in which case it returns ErrUnavailable without calling it.
func (g *Guarded) InsertAppointment(ctx context.Context, appt booking.Appointment) error {
	_, err := g.cb.Execute(func() (interface{}, error) {
		return nil, g.client.InsertAppointment(ctx, appt)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrUnavailable
	}
	return err
}
