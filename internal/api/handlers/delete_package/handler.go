package delete_package

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/api/middleware"
	"github.com/bimbelceria/BC-AdminService/internal/service/packages"
)

const (
	msgInvalidPackageID = "ID paket tidak valid"
	msgNotFound         = "paket tidak ditemukan"
	msgForbidden        = "hanya admin yang dapat menghapus paket"
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

// Handle DELETE /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	userID := middleware.GetUserID(r)

	err = h.service.Delete(r.Context(), packageID, userID)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotFound):
			h.logger.Warn("DELETE /packages/{id} - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, packages.ErrAccessDenied):
			h.logger.Warn("DELETE /packages/{id} - Access denied: package_id=%d, user_id=%s",
				packageID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /packages/{id} - Failed to delete package: package_id=%d, error=%v",
				packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{id} - Package deleted: package_id=%d, user_id=%s",
		packageID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
