package get_dashboard_stats

import (
	"net/http"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
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

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.DashboardStats(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to gather counters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
