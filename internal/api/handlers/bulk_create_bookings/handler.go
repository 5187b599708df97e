package bulk_create_bookings

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
	msgEmptyStudents      = "minimal satu siswa harus dipilih"
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

// Handle POST /api/v1/bookings/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BulkCreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.CreateBulk(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStudentNotFound):
			h.logger.Warn("POST /bookings/bulk - Student not found: %v", err)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, bookings.ErrInvalidBookingDate):
			h.logger.Warn("POST /bookings/bulk - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookings.ErrInvalidBookingTime):
			h.logger.Warn("POST /bookings/bulk - Invalid time: %s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/bulk - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmptyStudents)

		default:
			h.logger.Error("POST /bookings/bulk - Failed to create bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/bulk - Created %d bookings on %s %s", len(resp.Bookings), req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
