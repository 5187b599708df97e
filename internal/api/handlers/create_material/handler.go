package create_material

import (
	"errors"
	"net/http"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/service/materials"
	"github.com/bimbelceria/BC-AdminService/internal/service/materials/models"
)

const (
	msgInvalidRequestBody = "body permintaan tidak valid"
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

// Handle POST /api/v1/materials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMaterialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /materials - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, materials.ErrInvalidInput):
			h.logger.Warn("POST /materials - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /materials - Failed to create material: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /materials - Material created: material_id=%d", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
