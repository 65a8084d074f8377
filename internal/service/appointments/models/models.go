package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей.
// ServiceID - сырая строка из query: некорректный UUID не ошибка,
// фильтр просто не применяется.
type ListAppointmentsRequest struct {
	ServiceID  string
	CustomerID string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	var filter domain.AppointmentsFilter

	if id, err := uuid.Parse(r.ServiceID); err == nil {
		filter.ServiceID = &id
	}
	if id, err := uuid.Parse(r.CustomerID); err == nil {
		filter.CustomerID = &id
	}

	return filter
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         int64     `json:"id"`
	ServiceID  uuid.UUID `json:"serviceId"`
	CustomerID uuid.UUID `json:"customerId"`
	Date       string    `json:"date"`   // "2026-09-14"
	StartTime  string    `json:"time"`   // "10:00"
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:         a.ID,
		ServiceID:  a.ServiceID,
		CustomerID: a.CustomerID,
		Date:       a.Date.Format(domain.DateFormat),
		StartTime:  a.StartTime.String(),
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		appointments = append(appointments, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: appointments}
}
