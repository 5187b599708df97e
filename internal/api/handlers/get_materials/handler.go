package get_materials

import (
	"net/http"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
)

type Handler struct {
	service MaterialService
	logger  Logger
}

func NewHandler(service MaterialService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/materials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /materials - Failed to list materials: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
