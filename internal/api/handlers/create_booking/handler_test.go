package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/facility-booking/internal/api/handlers"
	"github.com/playgrid/facility-booking/internal/api/middleware"
	createBooking "github.com/playgrid/facility-booking/internal/usecase/create_booking"
)

type stubUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *stubUseCase, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}

	recorder := httptest.NewRecorder()
	handler := NewHandler(uc, noopLogger{})
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(recorder, req)
	return recorder
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"facilityId":  int64(1),
		"scheduleId":  int64(10),
		"bookingDate": "2025-10-13",
		"seats":       2,
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:           1,
		UserID:       42,
		FacilityID:   1,
		StartAt:      time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC),
		EndAt:        time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC),
		Seats:        2,
		Price:        40.0,
		Status:       "confirmed",
		FacilityName: "Центральный корт",
		SportName:    "Теннис",
	}}

	recorder := doRequest(t, uc, "42", validBody())
	require.Equal(t, http.StatusCreated, recorder.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(42), uc.gotReq.UserID)
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)
	assert.Equal(t, 2, uc.gotReq.Seats)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-10-13T08:00:00Z", resp.StartAt)
	assert.InDelta(t, 40.0, resp.Price, 0.001)
	assert.Equal(t, "confirmed", resp.Status)
}

// Места не указаны - бронируется одно
func TestHandle_SeatsDefaultToOne(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{Status: "confirmed"}}

	body := validBody()
	delete(body, "seats")

	recorder := doRequest(t, uc, "42", body)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, uc.gotReq.Seats)
}

func TestHandle_SlotUnavailable(t *testing.T) {
	uc := &stubUseCase{err: createBooking.ErrSlotUnavailable}

	recorder := doRequest(t, uc, "42", validBody())
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "This time slot is already booked.", resp.Error)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "user not found", err: createBooking.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "facility not found", err: createBooking.ErrFacilityNotFound, wantStatus: http.StatusNotFound},
		{name: "facility inactive", err: createBooking.ErrFacilityInactive, wantStatus: http.StatusBadRequest},
		{name: "invalid schedule", err: createBooking.ErrInvalidSchedule, wantStatus: http.StatusBadRequest},
		{name: "capacity exceeded", err: createBooking.ErrCapacityExceeded, wantStatus: http.StatusBadRequest},
		{name: "invalid date", err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}

			recorder := doRequest(t, uc, "42", validBody())
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandle_MissingAuthHeader(t *testing.T) {
	uc := &stubUseCase{}

	recorder := doRequest(t, uc, "", validBody())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &stubUseCase{}

	body := validBody()
	body["bookingDate"] = "13.10.2025"

	recorder := doRequest(t, uc, "42", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	uc := &stubUseCase{}

	body := validBody()
	body["unexpected"] = true

	recorder := doRequest(t, uc, "42", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
