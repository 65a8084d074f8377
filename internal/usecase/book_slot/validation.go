package book_slot

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/internal/domain"
	"github.com/avelkin/SPM-BookingService/pkg/types"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// parseRequest валидирует сырые входные данные и возвращает разобранные значения.
// Попадание времени на сетку слотов НЕ проверяется: время приходит из выдачи
// доступности, и записи вне сетки исторически принимаются, если слот свободен.
func parseRequest(req *Request) (uuid.UUID, time.Time, types.TimeString, error) {
	if req.CustomerID == uuid.Nil {
		return uuid.Nil, time.Time{}, "", fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return uuid.Nil, time.Time{}, "", fmt.Errorf("%w: serviceId must be a valid UUID", ErrInvalidInput)
	}

	if !dateRegex.MatchString(req.Date) {
		return uuid.Nil, time.Time{}, "", fmt.Errorf("%w: date must match YYYY-MM-DD", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return uuid.Nil, time.Time{}, "", fmt.Errorf("%w: date is not a valid calendar date", ErrInvalidInput)
	}

	if !timeRegex.MatchString(req.Time) {
		return uuid.Nil, time.Time{}, "", fmt.Errorf("%w: time must match HH:MM", ErrInvalidInput)
	}

	return serviceID, date, types.TimeString(req.Time), nil
}
