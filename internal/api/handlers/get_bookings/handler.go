package get_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/usecase/list_bookings"
)

const (
	msgInvalidQuery  = "parameter query tidak valid"
	msgInvalidDate   = "format tanggal tidak valid, gunakan YYYY-MM-DD"
	msgInvalidStatus = "status tidak valid, gunakan scheduled/done/cancelled"
)

type Handler struct {
	usecase ListBookingsUseCase
	logger  Logger
}

func NewHandler(usecase ListBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query: startDate, endDate, studentId, instructorId, status (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, list_bookings.ErrInvalidDate):
			h.logger.Warn("GET /bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, list_bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, list_bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func parseQuery(r *http.Request) (*list_bookings.Request, error) {
	query := r.URL.Query()

	req := &list_bookings.Request{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}

	if raw := query.Get("studentId"); raw != "" {
		studentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StudentID = &studentID
	}
	if raw := query.Get("instructorId"); raw != "" {
		instructorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.InstructorID = &instructorID
	}
	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	return req, nil
}
