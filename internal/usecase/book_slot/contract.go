package book_slot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/internal/domain"
	"github.com/avelkin/SPM-BookingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	HasActiveAt(ctx context.Context, serviceID uuid.UUID, date time.Time, startTime types.TimeString) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
