package book_slot

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/internal/domain"
	bookSlot "github.com/avelkin/SPM-BookingService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	ServiceID string `json:"serviceId"` // UUID
	Date      string `json:"date"`      // "2026-09-14"
	Time      string `json:"time"`      // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64  `json:"id"`
	ServiceID  string `json:"serviceId"`
	CustomerID string `json:"customerId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(customerID uuid.UUID) *bookSlot.Request {
	return &bookSlot.Request{
		CustomerID: customerID,
		ServiceID:  r.ServiceID,
		Date:       r.Date,
		Time:       r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		ServiceID:  resp.ServiceID.String(),
		CustomerID: resp.CustomerID.String(),
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.StartTime.String(),
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
