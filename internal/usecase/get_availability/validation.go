package get_availability

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/internal/domain"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseRequest валидирует сырые входные данные и возвращает разобранные значения
func parseRequest(req *Request) (uuid.UUID, time.Time, error) {
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("%w: serviceId must be a valid UUID", ErrInvalidInput)
	}

	if !dateRegex.MatchString(req.Date) {
		return uuid.Nil, time.Time{}, fmt.Errorf("%w: date must match YYYY-MM-DD", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("%w: date is not a valid calendar date", ErrInvalidInput)
	}

	return serviceID, date, nil
}
