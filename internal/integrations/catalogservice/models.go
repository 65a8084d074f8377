package catalogservice

import (
	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/internal/domain"
	"github.com/avelkin/SPM-BookingService/pkg/types"
)

// Service модель услуги из каталога.
// Сервису бронирования нужны только длительность слота и рабочие часы -
// остальные поля каталога (цена, описание, категория) сюда не попадают.
type Service struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	DurationMinutes int           `json:"duration"` // длительность слота в минутах
	WorkingHours    []WorkingHour `json:"working_hours"`
}

// WorkingHour рабочее окно провайдера на один день недели
type WorkingHour struct {
	Day       string `json:"day"`        // например, "Monday"
	StartTime string `json:"start_time"` // "09:00"
	EndTime   string `json:"end_time"`   // "17:00"
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ScheduleEntries конвертирует рабочие часы в доменные записи расписания
func (s *Service) ScheduleEntries() []domain.ScheduleEntry {
	entries := make([]domain.ScheduleEntry, 0, len(s.WorkingHours))
	for _, wh := range s.WorkingHours {
		entries = append(entries, domain.ScheduleEntry{
			Day:       wh.Day,
			StartTime: types.TimeString(wh.StartTime),
			EndTime:   types.TimeString(wh.EndTime),
		})
	}
	return entries
}
