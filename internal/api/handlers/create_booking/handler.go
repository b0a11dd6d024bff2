package create_booking

import (
	"errors"
	"net/http"

	"github.com/playgrid/facility-booking/internal/api/handlers"
	"github.com/playgrid/facility-booking/internal/api/middleware"
	createBooking "github.com/playgrid/facility-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgSlotUnavailable    = "This time slot is already booked."
	msgUserNotFound       = "user not found"
	msgFacilityNotFound   = "facility not found"
	msgFacilityInactive   = "facility is not available for booking"
	msgInvalidSchedule    = "Invalid schedule selection."
	msgCapacityExceeded   = "requested seats exceed facility capacity"
	msgInvalidBookingDate = "invalid booking date"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "not authenticated")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse booking date %q: %v", req.BookingDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: user_id=%d, facility_id=%d", userID, req.FacilityID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBooking.ErrFacilityInactive):
			h.logger.Warn("POST /bookings - Facility inactive: facility_id=%d", req.FacilityID)
			handlers.RespondBadRequest(w, msgFacilityInactive)

		case errors.Is(err, createBooking.ErrInvalidSchedule):
			h.logger.Warn("POST /bookings - Invalid schedule: schedule_id=%d, facility_id=%d",
				req.ScheduleID, req.FacilityID)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: seats=%d, facility_id=%d",
				req.Seats, req.FacilityID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, facility_id=%d",
				userID, req.FacilityID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, facility_id=%d, error=%v",
				userID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, facility_id=%d",
		result.ID, userID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
