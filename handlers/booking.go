package handlers

import (
	"errors"
	"net/http"

	"medicore/middleware"
	"medicore/models"
	"medicore/services/booking"
	"medicore/services/notification"
	"medicore/services/scheduling"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// Book handles POST /api/bookings/book.
func (h *BookingHandler) Book(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), middleware.CallerID(c), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// Availability handles GET /api/bookings/availability.
func (h *BookingHandler) Availability(c *gin.Context) {
	doctorID := c.Query("doctorId")
	if doctorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "doctorId is required", "")
		return
	}
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date is required", "")
		return
	}

	blocks, err := h.Service.HourlyAvailability(c.Request.Context(), doctorID, c.Query("hospitalId"), date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := gin.H{"slots": blocks}
	if role := middleware.CallerRole(c); role == notification.RoleHelpdesk || role == notification.RoleDoctor {
		byHour := make(map[int]int, len(blocks))
		for _, b := range blocks {
			byHour[b.Hour] = b.BookedCount
		}
		resp["bookedCountByHour"] = byHour
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PUT /api/bookings/status/:id.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, input.Reason, middleware.CallerRole(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// StartNext handles POST /api/bookings/next.
func (h *BookingHandler) StartNext(c *gin.Context) {
	appt, err := h.Service.StartNext(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if appt == nil {
		c.JSON(http.StatusOK, gin.H{"appointment": nil, "message": "no confirmed appointments remaining today"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// respondError maps service errors onto the response taxonomy: validation
// and not-found are terminal for the caller, business-rule rejections carry
// a precise reason so the client can pick another slot, anything else is a
// retryable 500.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrHospitalRequired),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, scheduling.ErrInvalidSlotFormat):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, booking.ErrDoctorNotFound),
		errors.Is(err, booking.ErrHospitalNotFound),
		errors.Is(err, booking.ErrAppointmentNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, booking.ErrSelfBooking):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, scheduling.ErrOnLeave):
		utils.JSONError(c, http.StatusConflict, "doctor unavailable", "doctor is on leave on the selected date")
	case errors.Is(err, scheduling.ErrNotScheduled):
		utils.JSONError(c, http.StatusConflict, "doctor unavailable", "doctor is not scheduled on the selected day")
	case errors.Is(err, scheduling.ErrNoSlotsInHour),
		errors.Is(err, scheduling.ErrHourFull),
		errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
	}
}
