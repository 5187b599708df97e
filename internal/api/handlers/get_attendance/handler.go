package get_attendance

import (
	"errors"
	"net/http"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/service/bookings"
)

const (
	msgInvalidDate = "format tanggal tidak valid, gunakan YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/attendance
// Query: date (required, "2025-01-15")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	resp, err := h.service.Attendance(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidBookingDate):
			h.logger.Warn("GET /attendance - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /attendance - Failed to build attendance sheet: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
