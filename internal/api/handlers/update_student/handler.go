package update_student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/service/students"
	"github.com/bimbelceria/BC-AdminService/internal/service/students/models"
)

const (
	msgInvalidStudentID   = "ID siswa tidak valid"
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgNotFound           = "siswa tidak ditemukan"
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

// Handle PUT /api/v1/students/{studentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	studentID, err := strconv.ParseInt(vars["studentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /students/{id} - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	var req models.UpdateStudentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /students/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), studentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, students.ErrStudentNotFound):
			h.logger.Warn("PUT /students/{id} - Student not found: student_id=%d", studentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, students.ErrInvalidInput):
			h.logger.Warn("PUT /students/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /students/{id} - Failed to update student: student_id=%d, error=%v",
				studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /students/{id} - Student updated: student_id=%d", studentID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
