package list_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelkin/SPM-BookingService/internal/service/appointments/models"
)

type stubService struct {
	resp *models.AppointmentListResponse
	err  error

	gotReq *models.ListAppointmentsRequest
}

func (s *stubService) List(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.gotReq = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	t.Run("list with filters", func(t *testing.T) {
		serviceID := uuid.New()
		svc := &stubService{
			resp: &models.AppointmentListResponse{
				Appointments: []models.AppointmentResponse{
					{ID: 1, ServiceID: serviceID, Date: "2026-09-14", StartTime: "10:00", Status: "pending"},
				},
			},
		}
		h := NewHandler(svc, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?serviceId="+serviceID.String(), nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.AppointmentListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Appointments, 1)
		assert.Equal(t, int64(1), resp.Appointments[0].ID)

		require.NotNil(t, svc.gotReq)
		assert.Equal(t, serviceID.String(), svc.gotReq.ServiceID)
		assert.Empty(t, svc.gotReq.CustomerID)
	})

	t.Run("no filters", func(t *testing.T) {
		svc := &stubService{resp: &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}}
		h := NewHandler(svc, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, svc.gotReq.ServiceID)
		assert.Empty(t, svc.gotReq.CustomerID)
	})

	t.Run("service error", func(t *testing.T) {
		h := NewHandler(&stubService{err: errors.New("boom")}, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
