package get_bookable_days

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/playgrid/facility-booking/internal/api/handlers"
	"github.com/playgrid/facility-booking/internal/domain"
	getBookableDays "github.com/playgrid/facility-booking/internal/usecase/get_bookable_days"
)

type Handler struct {
	useCase GetBookableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/bookable-days?start=2025-10-15&days=7
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil || facilityID <= 0 {
		h.logger.Warn("GET /facilities/{id}/bookable-days - Invalid facility ID: %s", vars["facilityId"])
		handlers.RespondBadRequest(w, "invalid facility ID")
		return
	}

	req := &getBookableDays.Request{FacilityID: facilityID}

	if start := r.URL.Query().Get("start"); start != "" {
		startDate, err := time.Parse(domain.DateFormat, start)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/bookable-days - Invalid start date: %s", start)
			handlers.RespondBadRequest(w, "invalid start date, expected YYYY-MM-DD")
			return
		}
		req.StartDate = startDate
	}

	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/bookable-days - Invalid days param: %s", daysParam)
			handlers.RespondBadRequest(w, "invalid days parameter")
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBookableDays.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/bookable-days - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, "facility not found")

		case errors.Is(err, getBookableDays.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/bookable-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, "invalid request parameters")

		default:
			h.logger.Error("GET /facilities/{id}/bookable-days - Failed: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
