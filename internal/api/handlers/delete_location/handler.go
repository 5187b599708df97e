package delete_location

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/api/middleware"
	"github.com/bimbelceria/BC-AdminService/internal/service/locations"
)

const (
	msgInvalidLocationID = "ID lokasi tidak valid"
	msgNotFound          = "lokasi tidak ditemukan"
	msgForbidden         = "hanya admin yang dapat menghapus lokasi"
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

// Handle DELETE /api/v1/locations/{locationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /locations/{id} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	userID := middleware.GetUserID(r)

	err = h.service.Delete(r.Context(), locationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrLocationNotFound):
			h.logger.Warn("DELETE /locations/{id} - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, locations.ErrAccessDenied):
			h.logger.Warn("DELETE /locations/{id} - Access denied: location_id=%d, user_id=%s",
				locationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /locations/{id} - Failed to delete location: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /locations/{id} - Location deleted: location_id=%d, user_id=%s",
		locationID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
