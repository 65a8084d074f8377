package list_appointments

import (
	"net/http"

	"github.com/avelkin/SPM-BookingService/internal/api/handlers"
	"github.com/avelkin/SPM-BookingService/internal/service/appointments/models"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: serviceId, customerId (опционально).
// Некорректный UUID в фильтре не ошибка - фильтр просто игнорируется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{
		ServiceID:  r.URL.Query().Get("serviceId"),
		CustomerID: r.URL.Query().Get("customerId"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
