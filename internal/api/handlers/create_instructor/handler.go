package create_instructor

import (
	"errors"
	"net/http"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/service/instructors"
	"github.com/bimbelceria/BC-AdminService/internal/service/instructors/models"
)

const (
	msgInvalidRequestBody = "body permintaan tidak valid"
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

// Handle POST /api/v1/instructors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInstructorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /instructors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInvalidInput):
			h.logger.Warn("POST /instructors - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /instructors - Failed to create instructor: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /instructors - Instructor created: instructor_id=%d", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
