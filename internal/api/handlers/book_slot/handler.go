package book_slot

import (
	"errors"
	"net/http"

	"github.com/avelkin/SPM-BookingService/internal/api/handlers"
	"github.com/avelkin/SPM-BookingService/internal/api/middleware"
	bookSlot "github.com/avelkin/SPM-BookingService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный ID услуги, дата или время"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgUnauthorized       = "не удалось определить пользователя"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: customer_id=%s, service_id=%s", customerID, req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookSlot.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: customer_id=%s, service_id=%s, date=%s, time=%s",
				customerID, req.ServiceID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /appointments - Failed to book slot: customer_id=%s, service_id=%s, error=%v",
				customerID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%s, service_id=%s",
		result.ID, customerID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
