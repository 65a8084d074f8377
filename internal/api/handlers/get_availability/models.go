package get_availability

import (
	"github.com/avelkin/SPM-BookingService/internal/domain"
	getAvailability "github.com/avelkin/SPM-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Slots     []Slot `json:"slots"`
}

// Slot кандидат-слот с пометкой занятости
type Slot struct {
	Time     string `json:"time"`
	Disabled bool   `json:"disabled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:     slot.Time.String(),
			Disabled: slot.Disabled,
		}
	}

	return &AvailabilityResponse{
		ServiceID: resp.ServiceID.String(),
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
