package appointment

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelkin/SPM-BookingService/internal/domain"
	"github.com/avelkin/SPM-BookingService/pkg/ptr"
	"github.com/avelkin/SPM-BookingService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	serviceID := uuid.New()
	customerID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	appt := func() *domain.Appointment {
		return &domain.Appointment{
			ServiceID:  serviceID,
			CustomerID: customerID,
			Date:       date,
			StartTime:  "10:00",
			Status:     domain.StatusPending,
		}
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()

		mock.ExpectQuery("INSERT INTO appointments").
			WithArgs(serviceID, customerID, date, types.TimeString("10:00"), domain.StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(7), now, now))

		created, err := repo.Create(context.Background(), appt())
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to slot taken", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO appointments").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_appointments_active_slot"})

		_, err := repo.Create(context.Background(), appt())
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other db error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO appointments").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.Create(context.Background(), appt())
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	serviceID := uuid.New()
	customerID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT id, service_id, customer_id, appointment_date, start_time, status, created_at, updated_at FROM appointments").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(appointmentColumns).
				AddRow(int64(7), serviceID.String(), customerID.String(), date, "10:00", "confirmed", now, now))

		appt, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), appt.ID)
		assert.Equal(t, serviceID, appt.ServiceID)
		assert.Equal(t, types.TimeString("10:00"), appt.StartTime)
		assert.Equal(t, domain.StatusConfirmed, appt.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM appointments").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetWithFilter(t *testing.T) {
	serviceID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("by service and date orders by start time", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM appointments WHERE service_id = \$1 AND appointment_date = \$2 AND status IN \(\$3,\$4\) ORDER BY start_time ASC`).
			WithArgs(serviceID, date, "pending", "confirmed").
			WillReturnRows(sqlmock.NewRows(appointmentColumns).
				AddRow(int64(1), serviceID.String(), uuid.New().String(), date, "09:00", "pending", now, now).
				AddRow(int64(2), serviceID.String(), uuid.New().String(), date, "11:00", "confirmed", now, now))

		appointments, err := repo.GetWithFilter(context.Background(), domain.AppointmentsFilter{
			ServiceID:  &serviceID,
			Date:       ptr.Ptr(date),
			ActiveOnly: true,
		})
		require.NoError(t, err)
		require.Len(t, appointments, 2)
		assert.Equal(t, types.TimeString("09:00"), appointments[0].StartTime)
		assert.Equal(t, types.TimeString("11:00"), appointments[1].StartTime)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filters orders newest first", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM appointments ORDER BY appointment_date DESC, start_time DESC`).
			WillReturnRows(sqlmock.NewRows(appointmentColumns))

		appointments, err := repo.GetWithFilter(context.Background(), domain.AppointmentsFilter{})
		require.NoError(t, err)
		assert.Empty(t, appointments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM appointments`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetWithFilter(context.Background(), domain.AppointmentsFilter{})
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_HasActiveAt(t *testing.T) {
	serviceID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("slot taken", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT 1 FROM appointments").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		taken, err := repo.HasActiveAt(context.Background(), serviceID, date, "10:00")
		require.NoError(t, err)
		assert.True(t, taken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("slot free", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT 1 FROM appointments").
			WillReturnError(sql.ErrNoRows)

		taken, err := repo.HasActiveAt(context.Background(), serviceID, date, "10:00")
		require.NoError(t, err)
		assert.False(t, taken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(domain.StatusConfirmed, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 7, domain.StatusConfirmed)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE appointments").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 99, domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FinalizePast(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("complete past confirmed", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE appointment_date < \$2 AND status = \$3`).
			WithArgs(domain.StatusCompleted, now, domain.StatusConfirmed).
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.CompletePastConfirmed(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancel past pending", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE appointment_date < \$2 AND status = \$3`).
			WithArgs(domain.StatusCancelled, now, domain.StatusPending).
			WillReturnResult(sqlmock.NewResult(0, 2))

		count, err := repo.CancelPastPending(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing to finalize", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE appointments").
			WillReturnResult(sqlmock.NewResult(0, 0))

		count, err := repo.CompletePastConfirmed(context.Background(), now)
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
