package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mrsinham/hilom/internal/booking"
)

const appointmentsTable = "appointments"

// SQLClient stores appointments in PostgreSQL.
type SQLClient struct {
	db             *sql.DB
	q              *goqu.Database
	connectTimeout time.Duration
}

// Open prepares a client for dsn. No connection is made until first use.
func Open(dsn string, connectTimeout time.Duration) (*SQLClient, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return NewSQLClient(db, connectTimeout), nil
}

// NewSQLClient wraps an existing handle.
func NewSQLClient(db *sql.DB, connectTimeout time.Duration) *SQLClient {
	return &SQLClient{
		db:             db,
		q:              goqu.New("postgres", db),
		connectTimeout: connectTimeout,
	}
}

// Close releases the connection pool.
func (c *SQLClient) Close() error {
	return c.db.Close()
}

func (c *SQLClient) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

// InsertAppointment inserts one row into appointments.
func (c *SQLClient) InsertAppointment(ctx context.Context, appt booking.Appointment) error {
	if err := c.ping(ctx); err != nil {
		return err
	}

	record := goqu.Record{
		"patient_name":      appt.PatientName,
		"age":               appt.Age,
		"contact":           appt.Contact,
		"gender":            appt.Gender.String(),
		"address":           appt.Address,
		"concern":           appt.Concern,
		"doctor_id":         appt.Doctor.ID,
		"hospital_id":       appt.Hospital.ID,
		"schedule":          appt.Date,
		"time_slot":         string(appt.Slot),
		"consultation_type": appt.Consultation.String(),
		"price":             appt.Price,
	}

	query, args, err := c.q.Insert(appointmentsTable).Prepared(true).Rows(record).ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

// ListAppointments returns every stored appointment, newest first.
func (c *SQLClient) ListAppointments(ctx context.Context) ([]AppointmentRecord, error) {
	if err := c.ping(ctx); err != nil {
		return nil, err
	}

	query, args, err := c.q.Select(
		"patient_name", "schedule", "time_slot", "consultation_type",
		"price", "contact", "concern",
	).From(appointmentsTable).
		Order(goqu.I("created_at").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var out []AppointmentRecord
	for rows.Next() {
		var r AppointmentRecord
		if err := rows.Scan(
			&r.PatientName,
			&r.Schedule,
			&r.TimeSlot,
			&r.ConsultationType,
			&r.Price,
			&r.Contact,
			&r.Concern,
		); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return out, nil
}
