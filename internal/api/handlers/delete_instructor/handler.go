package delete_instructor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/api/middleware"
	"github.com/bimbelceria/BC-AdminService/internal/service/instructors"
)

const (
	msgInvalidInstructorID = "ID pengajar tidak valid"
	msgNotFound            = "pengajar tidak ditemukan"
	msgForbidden           = "hanya admin yang dapat menghapus pengajar"
)

type Handler struct {
	service InstructorService
	logger  Logger
}

func NewHandler(service InstructorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/instructors/{instructorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instructorID, err := strconv.ParseInt(vars["instructorId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /instructors/{id} - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	userID := middleware.GetUserID(r)

	err = h.service.Delete(r.Context(), instructorID, userID)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInstructorNotFound):
			h.logger.Warn("DELETE /instructors/{id} - Instructor not found: instructor_id=%d", instructorID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, instructors.ErrAccessDenied):
			h.logger.Warn("DELETE /instructors/{id} - Access denied: instructor_id=%d, user_id=%s",
				instructorID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /instructors/{id} - Failed to delete instructor: instructor_id=%d, error=%v",
				instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /instructors/{id} - Instructor deleted: instructor_id=%d, user_id=%s",
		instructorID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
