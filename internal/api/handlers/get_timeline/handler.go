package get_timeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	timelineUC "github.com/bimbelceria/BC-AdminService/internal/usecase/get_timeline"
)

const (
	msgInvalidMonth        = "format bulan tidak valid, gunakan YYYY-MM"
	msgInvalidInstructorID = "ID pengajar tidak valid"
)

type Handler struct {
	usecase TimelineUseCase
	logger  Logger
}

func NewHandler(usecase TimelineUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeline
// Query: month (required, "2025-01"), instructorId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &timelineUC.Request{
		Month: query.Get("month"),
	}

	if raw := query.Get("instructorId"); raw != "" {
		instructorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /timeline - Invalid instructor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInstructorID)
			return
		}
		req.InstructorID = &instructorID
	}

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, timelineUC.ErrInvalidMonth), errors.Is(err, timelineUC.ErrInvalidInput):
			h.logger.Warn("GET /timeline - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /timeline - Failed to build timeline: month=%s, error=%v", req.Month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
