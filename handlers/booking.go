package handlers

import (
	"net/http"

	"tinyhouse/middleware"
	"tinyhouse/models"
	"tinyhouse/resolvers"
	"tinyhouse/services/booking"
	"tinyhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation.
type BookingHandler struct {
	Service  booking.BookingService
	Resolver *resolvers.Resolver
}

// CreateBooking books a listing for the viewer.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)

	var in models.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), middleware.ViewerID(c), in)
	if err != nil {
		respondError(c, "Failed to create booking", err)
		return
	}

	dto, err := h.Resolver.Booking(c.Request.Context(), b)
	if err != nil {
		// The booking is committed; fall back to the bare record.
		logger.Warn("failed to resolve booking", zap.String("bookingId", b.ID), zap.Error(err))
		c.JSON(http.StatusCreated, b)
		return
	}
	c.JSON(http.StatusCreated, dto)
}
