package delete_material

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/api/middleware"
	"github.com/bimbelceria/BC-AdminService/internal/service/materials"
)

const (
	msgInvalidMaterialID = "ID materi tidak valid"
	msgNotFound          = "materi tidak ditemukan"
	msgForbidden         = "hanya admin yang dapat menghapus materi"
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

// Handle DELETE /api/v1/materials/{materialId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	materialID, err := strconv.ParseInt(vars["materialId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /materials/{id} - Invalid material ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMaterialID)
		return
	}

	userID := middleware.GetUserID(r)

	err = h.service.Delete(r.Context(), materialID, userID)
	if err != nil {
		switch {
		case errors.Is(err, materials.ErrMaterialNotFound):
			h.logger.Warn("DELETE /materials/{id} - Material not found: material_id=%d", materialID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, materials.ErrAccessDenied):
			h.logger.Warn("DELETE /materials/{id} - Access denied: material_id=%d, user_id=%s",
				materialID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /materials/{id} - Failed to delete material: material_id=%d, error=%v",
				materialID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /materials/{id} - Material deleted: material_id=%d, user_id=%s",
		materialID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
