package get_student_progress

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	progressUC "github.com/bimbelceria/BC-AdminService/internal/usecase/get_student_progress"
)

const (
	msgInvalidStudentID = "ID siswa tidak valid"
	msgNotFound         = "siswa tidak ditemukan"
)

type Handler struct {
	usecase ProgressUseCase
	logger  Logger
}

func NewHandler(usecase ProgressUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{studentId}/progress
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	studentID, err := strconv.ParseInt(vars["studentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /students/{id}/progress - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &progressUC.Request{StudentID: studentID})
	if err != nil {
		switch {
		case errors.Is(err, progressUC.ErrStudentNotFound):
			h.logger.Warn("GET /students/{id}/progress - Student not found: student_id=%d", studentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, progressUC.ErrInvalidInput):
			h.logger.Warn("GET /students/{id}/progress - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStudentID)

		default:
			h.logger.Error("GET /students/{id}/progress - Failed to build progress: student_id=%d, error=%v",
				studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
