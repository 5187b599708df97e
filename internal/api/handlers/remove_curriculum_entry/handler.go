package remove_curriculum_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/service/packages"
)

const (
	msgInvalidPackageID = "ID paket tidak valid"
	msgInvalidEntryID   = "ID entri kurikulum tidak valid"
	msgPackageNotFound  = "paket tidak ditemukan"
	msgEntryNotFound    = "entri kurikulum tidak ditemukan"
	msgEntryMismatch    = "entri kurikulum bukan milik paket ini"
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

// Handle DELETE /api/v1/packages/{packageId}/curriculum/{entryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /packages/{id}/curriculum/{entryId} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	entryID, err := strconv.ParseInt(vars["entryId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /packages/{id}/curriculum/{entryId} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	resp, err := h.service.RemoveCurriculumEntry(r.Context(), packageID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotFound):
			h.logger.Warn("DELETE /packages/{id}/curriculum/{entryId} - Package not found: package_id=%d",
				packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, packages.ErrEntryNotFound):
			h.logger.Warn("DELETE /packages/{id}/curriculum/{entryId} - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, packages.ErrEntryMismatch):
			h.logger.Warn("DELETE /packages/{id}/curriculum/{entryId} - Entry mismatch: package_id=%d, entry_id=%d",
				packageID, entryID)
			handlers.RespondBadRequest(w, msgEntryMismatch)

		default:
			h.logger.Error("DELETE /packages/{id}/curriculum/{entryId} - Failed to remove entry: entry_id=%d, error=%v",
				entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{id}/curriculum/{entryId} - Entry removed: package_id=%d, entry_id=%d",
		packageID, entryID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
