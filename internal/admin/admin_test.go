package admin

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrsinham/hilom/internal/account"
	"github.com/mrsinham/hilom/internal/audit"
	"github.com/mrsinham/hilom/internal/store"
)

type fakeLister struct {
	records []store.AppointmentRecord
	err     error
}

func (f fakeLister) ListAppointments(context.Context) ([]store.AppointmentRecord, error) {
	return f.records, f.err
}

func setup(t *testing.T) (*Service, account.User) {
	t.Helper()
	dir := t.TempDir()

	accounts := account.New(filepath.Join(dir, "registered_list.csv"),
		account.WithCost(bcrypt.MinCost),
		account.WithAdmins([]string{"root@hilom.org"}))
	admin, err := accounts.Register(account.Registration{
		Name: "root", Email: "root@hilom.org", Password: "longenough", Confirm: "longenough",
	})
	require.NoError(t, err)

	history := audit.New(filepath.Join(dir, "history.csv"),
		audit.WithClock(func() time.Time { return time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC) }))
	_, err = history.Append(audit.CategoryAppointment, "Appointment for Jane Doe - online - $100")
	require.NoError(t, err)
	_, err = history.Append(audit.CategoryMusic, "Enya – Only Time")
	require.NoError(t, err)

	return &Service{History: history, Accounts: accounts, Logger: zerolog.Nop()}, admin
}

func TestOverview_RequiresAdmin(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Overview(context.Background(), account.User{Name: "jane"})
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestOverview_FromDatabase(t *testing.T) {
	svc, admin := setup(t)
	svc.Appointments = fakeLister{records: []store.AppointmentRecord{{
		PatientName:      "Jane Doe",
		Schedule:         time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		TimeSlot:         "10:00 AM",
		ConsultationType: "online",
		Price:            100,
		Contact:          "555-1111",
		Concern:          "checkup",
	}}}

	ov, err := svc.Overview(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, SourceDatabase, ov.Source)
	require.Len(t, ov.Appointments, 1)
	assert.Equal(t, AppointmentRow{
		PatientName:  "Jane Doe",
		Schedule:     "2025-12-20",
		TimeSlot:     "10:00 AM",
		Consultation: "online",
		Price:        "$100",
		Contact:      "555-1111",
		Concern:      "checkup",
		Status:       "Active",
	}, ov.Appointments[0])

	require.Len(t, ov.Users, 1)
	assert.Equal(t, "root", ov.Users[0].Name)
}

func TestOverview_FallsBackToHistory(t *testing.T) {
	svc, admin := setup(t)
	svc.Appointments = fakeLister{err: errors.New("connection refused")}

	ov, err := svc.Overview(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, SourceHistory, ov.Source)
	require.Len(t, ov.Appointments, 1)
	assert.Equal(t, "Appointment for Jane Doe - online - $100", ov.Appointments[0].PatientName)
	assert.Equal(t, "2025-12-20", ov.Appointments[0].Schedule)
	assert.Equal(t, "Logged", ov.Appointments[0].Status)
}

func TestOverview_NoDatabase(t *testing.T) {
	svc, admin := setup(t)

	ov, err := svc.Overview(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, SourceHistory, ov.Source)
}

func TestOverview_RecentHistory(t *testing.T) {
	svc, admin := setup(t)

	ov, err := svc.Overview(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, ov.Recent, 2)
	assert.Equal(t, audit.CategoryAppointment, ov.Recent[0].Category)
	assert.Equal(t, audit.CategoryMusic, ov.Recent[1].Category)

	for i := range RecentLimit {
		_, err := svc.History.Append(audit.CategoryJournal, fmt.Sprintf("entry %d", i))
		require.NoError(t, err)
	}

	ov, err = svc.Overview(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, ov.Recent, RecentLimit)
	assert.Equal(t, "entry 0", ov.Recent[0].Item)
	assert.Equal(t, fmt.Sprintf("entry %d", RecentLimit-1), ov.Recent[RecentLimit-1].Item)
}
