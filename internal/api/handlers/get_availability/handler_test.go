package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/avelkin/SPM-BookingService/internal/usecase/get_availability"
)

type stubUseCase struct {
	resp *getAvailability.Response
	err  error

	gotReq *getAvailability.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceId}/availability", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	serviceID := uuid.New()

	t.Run("ok", func(t *testing.T) {
		uc := &stubUseCase{
			resp: &getAvailability.Response{
				ServiceID: serviceID,
				Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
				Slots: []getAvailability.Slot{
					{Time: "09:00", Disabled: false},
					{Time: "10:00", Disabled: true},
				},
			},
		}
		h := NewHandler(uc, noopLogger{})

		rec := doRequest(h, "/api/v1/services/"+serviceID.String()+"/availability?date=2026-09-14")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp AvailabilityResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, serviceID.String(), resp.ServiceID)
		assert.Equal(t, "2026-09-14", resp.Date)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, Slot{Time: "09:00", Disabled: false}, resp.Slots[0])
		assert.Equal(t, Slot{Time: "10:00", Disabled: true}, resp.Slots[1])

		// Сырые значения из URL передаются в usecase без разбора
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, serviceID.String(), uc.gotReq.ServiceID)
		assert.Equal(t, "2026-09-14", uc.gotReq.Date)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := &stubUseCase{}
		h := NewHandler(uc, noopLogger{})

		rec := doRequest(h, "/api/v1/services/"+serviceID.String()+"/availability")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.gotReq)
	})

	t.Run("invalid input", func(t *testing.T) {
		h := NewHandler(&stubUseCase{err: getAvailability.ErrInvalidInput}, noopLogger{})

		rec := doRequest(h, "/api/v1/services/not-a-uuid/availability?date=2026-09-14")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service not found", func(t *testing.T) {
		h := NewHandler(&stubUseCase{err: getAvailability.ErrServiceNotFound}, noopLogger{})

		rec := doRequest(h, "/api/v1/services/"+serviceID.String()+"/availability?date=2026-09-14")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		h := NewHandler(&stubUseCase{err: errors.New("boom")}, noopLogger{})

		rec := doRequest(h, "/api/v1/services/"+serviceID.String()+"/availability?date=2026-09-14")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
