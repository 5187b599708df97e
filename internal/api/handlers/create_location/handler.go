package create_location

import (
	"errors"
	"net/http"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/service/locations"
	"github.com/bimbelceria/BC-AdminService/internal/service/locations/models"
)

const (
	msgInvalidRequestBody = "body permintaan tidak valid"
)

type Handler struct {
	service LocationService
	logger  Logger
}

func NewHandler(service LocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("POST /locations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /locations - Failed to create location: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations - Location created: location_id=%d", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
