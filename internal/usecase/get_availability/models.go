package get_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/pkg/types"
)

// Request модель запроса на получение доступности слотов.
// ID услуги и дата приходят сырыми строками и валидируются внутри usecase.
type Request struct {
	ServiceID string // ID услуги (UUID)
	Date      string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со слотами на дату
type Response struct {
	ServiceID uuid.UUID // ID услуги
	Date      time.Time // Дата, на которую запрашивались слоты
	Slots     []Slot    // Слоты по возрастанию времени начала
}

// Slot кандидат-слот с пометкой занятости
type Slot struct {
	Time     types.TimeString // Время начала слота, "HH:MM"
	Disabled bool             // true, если слот занят активной записью
}
