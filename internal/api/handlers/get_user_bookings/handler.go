package get_user_bookings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/facility-booking/internal/api/handlers"
	"github.com/playgrid/facility-booking/internal/api/middleware"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
// Историю бронирований пользователь видит только свою
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principalID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "not authenticated")
		return
	}

	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %s", vars["userId"])
		handlers.RespondBadRequest(w, "invalid user ID")
		return
	}

	if userID != principalID {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%d, principal_id=%d",
			userID, principalID)
		handlers.RespondForbidden(w, "cannot view bookings of another user")
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
