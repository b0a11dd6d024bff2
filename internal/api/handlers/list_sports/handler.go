package list_sports

import (
	"net/http"

	"github.com/playgrid/facility-booking/internal/api/handlers"
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

// Handle GET /api/v1/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSports(r.Context())
	if err != nil {
		h.logger.Error("GET /sports - Failed to list sports: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
