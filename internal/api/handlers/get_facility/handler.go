package get_facility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playgrid/facility-booking/internal/api/handlers"
	"github.com/playgrid/facility-booking/internal/service/facilities"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil || facilityID <= 0 {
		h.logger.Warn("GET /facilities/{id} - Invalid facility ID: %s", vars["facilityId"])
		handlers.RespondBadRequest(w, "invalid facility ID")
		return
	}

	facility, err := h.service.GetByID(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id} - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, "facility not found")

		default:
			h.logger.Error("GET /facilities/{id} - Failed to get facility: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, facility)
}
