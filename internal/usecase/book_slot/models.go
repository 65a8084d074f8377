package book_slot

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/pkg/types"
)

// Request модель запроса на бронирование слота.
// ID услуги, дата и время приходят сырыми строками и валидируются внутри usecase.
// CustomerID уже разобран из заголовка аутентификации.
type Request struct {
	CustomerID uuid.UUID // ID клиента
	ServiceID  string    // ID услуги (UUID)
	Date       string    // Дата в формате YYYY-MM-DD
	Time       string    // Время начала слота в формате HH:MM
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64            // ID созданной записи
	ServiceID  uuid.UUID        // ID услуги
	CustomerID uuid.UUID        // ID клиента
	Date       time.Time        // Дата записи
	StartTime  types.TimeString // Время начала слота
	Status     string           // Статус (всегда pending для новой записи)
	CreatedAt  time.Time        // Время создания
}
