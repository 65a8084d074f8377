package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booked slot for a service
type Appointment struct {
	ID         int64
	ServiceID  uuid.UUID
	CustomerID uuid.UUID
	Date       time.Time        // календарная дата без времени
	StartTime  types.TimeString // время начала слота, "HH:MM"
	Status     AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal returns true if the appointment reached a final status
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// ParseAppointmentStatus валидирует строковый статус и возвращает доменный
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	ServiceID  *uuid.UUID // Фильтр по услуге (опционально)
	CustomerID *uuid.UUID // Фильтр по клиенту (опционально)
	Date       *time.Time // Фильтр по дате (опционально)
	ActiveOnly bool       // Только pending/confirmed
}
