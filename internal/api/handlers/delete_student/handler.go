package delete_student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/api/middleware"
	"github.com/bimbelceria/BC-AdminService/internal/service/students"
)

const (
	msgInvalidStudentID = "ID siswa tidak valid"
	msgNotFound         = "siswa tidak ditemukan"
	msgForbidden        = "hanya admin yang dapat menghapus siswa"
)

type Handler struct {
	service StudentService
	logger  Logger
}

func NewHandler(service StudentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/students/{studentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	studentID, err := strconv.ParseInt(vars["studentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /students/{id} - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	userID := middleware.GetUserID(r)

	err = h.service.Delete(r.Context(), studentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, students.ErrStudentNotFound):
			h.logger.Warn("DELETE /students/{id} - Student not found: student_id=%d", studentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, students.ErrAccessDenied):
			h.logger.Warn("DELETE /students/{id} - Access denied: student_id=%d, user_id=%s", studentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /students/{id} - Failed to delete student: student_id=%d, error=%v",
				studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /students/{id} - Student deleted: student_id=%d, user_id=%s", studentID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
