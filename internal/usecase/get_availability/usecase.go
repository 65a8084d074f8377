package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelkin/SPM-BookingService/internal/domain"
	catalogClient "github.com/avelkin/SPM-BookingService/internal/integrations/catalogservice"
	"github.com/avelkin/SPM-BookingService/pkg/ptr"
)

// UseCase use case получения доступности слотов услуги на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogClient   CatalogServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogClient:   catalogClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности слотов.
// День недели без записи расписания - это пустой список слотов, не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%s, date=%s", req.ServiceID, req.Date)

	// 1. Валидация и разбор входных данных
	serviceID, date, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога: длительность слота и рабочие часы
	service, err := uc.catalogClient.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Ищем рабочее окно на день недели запрошенной даты
	weekday := date.Weekday().String()
	entry, ok := domain.ScheduleForWeekday(service.ScheduleEntries(), weekday)
	if !ok {
		uc.logger.Info("GetAvailability: service id=%s has no schedule for %s", serviceID, weekday)
		return &Response{
			ServiceID: serviceID,
			Date:      date,
			Slots:     []Slot{},
		}, nil
	}

	// 4. Генерируем кандидат-слоты рабочего окна
	slots, err := generateSlots(entry, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots for service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. Получаем активные записи ровно на эту (услуга, дата).
	// Отменённые и завершённые записи слот не блокируют.
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		ServiceID:  &serviceID,
		Date:       ptr.Ptr(date),
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments for service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Помечаем занятые слоты
	annotated := markBooked(slots, appointments)

	uc.logger.Info("GetAvailability: %d slots for service=%s, date=%s",
		len(annotated), serviceID, date.Format(domain.DateFormat))

	return &Response{
		ServiceID: serviceID,
		Date:      date,
		Slots:     annotated,
	}, nil
}
