package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelkin/SPM-BookingService/internal/domain"
	appointmentRepo "github.com/avelkin/SPM-BookingService/internal/infra/storage/appointment"
)

// UseCase use case бронирования слота
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case бронирования слота.
// Проверка занятости и вставка выполняются в сериализуемой транзакции,
// а частичный уникальный индекс по активному слоту страхует на уровне БД:
// из двух конкурентных бронирований одного слота ровно одно завершается успехом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: customer=%s, service=%s, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.Date, req.Time)

	// 1. Валидация и разбор входных данных
	serviceID, date, startTime, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Проверка занятости слота и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.appointmentRepo.HasActiveAt(txCtx, serviceID, date, startTime)
		if err != nil {
			uc.logger.Error("BookSlot: failed to check slot occupancy: %v", err)
			return fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("BookSlot: slot taken: service=%s, date=%s, time=%s",
				serviceID, req.Date, startTime)
			return ErrSlotTaken
		}

		appt := &domain.Appointment{
			ServiceID:  serviceID,
			CustomerID: req.CustomerID,
			Date:       date,
			StartTime:  startTime,
			Status:     domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Конкурентная вставка успела первой - индекс сработал
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("BookSlot: slot taken at insert: service=%s, date=%s, time=%s",
					serviceID, req.Date, startTime)
				return ErrSlotTaken
			}
			uc.logger.Error("BookSlot: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		ServiceID:  result.ServiceID,
		CustomerID: result.CustomerID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
	}, nil
}
