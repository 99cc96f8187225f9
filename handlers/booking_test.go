package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"venuely/apperr"
	bookingRepo "venuely/database/repository/booking"
	"venuely/handlers"
	"venuely/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubBookingService returns canned results per method.
type stubBookingService struct {
	createResult *models.Booking
	createErr    error
	getResult    *models.Booking
	getErr       error
	listResult   []models.Booking
	lastFilter   bookingRepo.ListFilter
	statusErr    error
}

func (s *stubBookingService) Create(_ context.Context, _ *models.CreateBookingRequest) (*models.Booking, error) {
	return s.createResult, s.createErr
}

func (s *stubBookingService) GetByID(string) (*models.Booking, error) {
	return s.getResult, s.getErr
}

func (s *stubBookingService) List(filter bookingRepo.ListFilter) ([]models.Booking, error) {
	s.lastFilter = filter
	return s.listResult, nil
}

func (s *stubBookingService) Today() ([]models.Booking, error) { return s.listResult, nil }

func (s *stubBookingService) Stats(context.Context) (*models.BookingStats, error) {
	return &models.BookingStats{Total: 3}, nil
}

func (s *stubBookingService) UpdateStatus(_ context.Context, _, status string) (*models.Booking, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	b := *s.getResult
	b.Status = status
	return &b, nil
}

func (s *stubBookingService) UpdatePayment(context.Context, string, string, float64) (*models.Booking, error) {
	return s.getResult, nil
}

func (s *stubBookingService) Delete(context.Context, string) error { return s.getErr }

func bookingRouter(svc *stubBookingService) *gin.Engine {
	h := handlers.NewBookingHandler(svc, nil)
	r := gin.New()
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.GET("/api/admin/bookings", h.GetAllBookingsHandler)
	r.GET("/api/admin/bookings/:id", h.GetBookingByIDHandler)
	r.PATCH("/api/admin/bookings/:id/status", h.UpdateBookingStatusHandler)
	return r
}

const validPayload = `{
	"customerName": "Maya Kimathi",
	"customerEmail": "maya@example.com",
	"customerPhone": "+254700111222",
	"eventDate": "2027-03-01",
	"slotId": "slot-1",
	"planId": "plan-1"
}`

func TestCreateBookingHandlerSuccess(t *testing.T) {
	svc := &stubBookingService{
		createResult: &models.Booking{ID: "b1", BookingRef: "VNB-20270301090000-ABCDEF1234"},
	}
	r := bookingRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validPayload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "VNB-20270301090000-ABCDEF1234")
}

func TestCreateBookingHandlerRejectsMissingFields(t *testing.T) {
	r := bookingRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"customerName":"Maya"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingHandlerMapsConflict(t *testing.T) {
	svc := &stubBookingService{createErr: apperr.ConflictError{Message: "slot is fully booked"}}
	r := bookingRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(validPayload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "fully booked")
}

func TestGetBookingByIDHandlerMapsNotFound(t *testing.T) {
	svc := &stubBookingService{getErr: apperr.NotFoundError{Resource: "booking", Ref: "b404"}}
	r := bookingRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings/b404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllBookingsHandlerPassesFilter(t *testing.T) {
	svc := &stubBookingService{listResult: []models.Booking{{ID: "b1"}, {ID: "b2"}}}
	r := bookingRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=pending&date=2027-03-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", svc.lastFilter.Status)
	assert.Equal(t, "2027-03-01", svc.lastFilter.EventDate)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
}

func TestUpdateBookingStatusHandlerMapsInvalidTransition(t *testing.T) {
	svc := &stubBookingService{
		getResult: &models.Booking{ID: "b1", Status: models.BookingStatusPending},
		statusErr: apperr.InvalidTransitionError{From: "pending", To: "completed"},
	}
	r := bookingRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/b1/status",
		strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
