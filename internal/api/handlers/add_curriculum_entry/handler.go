package add_curriculum_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/service/packages"
	"github.com/bimbelceria/BC-AdminService/internal/service/packages/models"
)

const (
	msgInvalidPackageID   = "ID paket tidak valid"
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgPackageNotFound    = "paket tidak ditemukan"
	msgMaterialNotFound   = "materi tidak ditemukan"
)

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/packages/{packageId}/curriculum
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /packages/{id}/curriculum - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req models.AddCurriculumEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages/{id}/curriculum - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.AddCurriculumEntry(r.Context(), packageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotFound):
			h.logger.Warn("POST /packages/{id}/curriculum - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, packages.ErrMaterialNotFound):
			h.logger.Warn("POST /packages/{id}/curriculum - Material not found: package_id=%d, material_id=%d",
				packageID, req.MaterialID)
			handlers.RespondNotFound(w, msgMaterialNotFound)

		case errors.Is(err, packages.ErrInvalidInput):
			h.logger.Warn("POST /packages/{id}/curriculum - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /packages/{id}/curriculum - Failed to add entry: package_id=%d, error=%v",
				packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages/{id}/curriculum - Entry added: package_id=%d, material_id=%d",
		packageID, req.MaterialID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
