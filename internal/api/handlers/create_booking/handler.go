package create_booking

import (
	"errors"
	"net/http"

	"github.com/bimbelceria/BC-AdminService/internal/api/handlers"
	"github.com/bimbelceria/BC-AdminService/internal/service/bookings"
	"github.com/bimbelceria/BC-AdminService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgInvalidDate        = "format tanggal tidak valid, gunakan YYYY-MM-DD"
	msgInvalidTime        = "format jam tidak valid, gunakan HH:MM"
	msgStudentNotFound    = "siswa tidak ditemukan"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStudentNotFound):
			h.logger.Warn("POST /bookings - Student not found: student_id=%d", req.StudentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, bookings.ErrInvalidBookingDate):
			h.logger.Warn("POST /bookings - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookings.ErrInvalidBookingTime):
			h.logger.Warn("POST /bookings - Invalid time: %s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: student_id=%d, error=%v",
				req.StudentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, student_id=%d", resp.ID, resp.StudentID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
