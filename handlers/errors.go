package handlers

import (
	"errors"
	"net/http"

	"tinyhouse/resolvers"
	"tinyhouse/services/availability"
	"tinyhouse/services/booking"
	"tinyhouse/services/listing"
	"tinyhouse/services/payment"
	"tinyhouse/services/storage"
	"tinyhouse/services/user"
	"tinyhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, availability.ErrOverlap),
		errors.Is(err, booking.ErrBookingInProgress):
		return http.StatusConflict
	case errors.Is(err, booking.ErrListingNotFound),
		errors.Is(err, listing.ErrListingNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, resolvers.ErrHostNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrViewerNotFound),
		errors.Is(err, listing.ErrViewerNotFound),
		errors.Is(err, user.ErrViewerNotFound),
		errors.Is(err, user.ErrLoginFailed):
		return http.StatusUnauthorized
	case errors.Is(err, booking.ErrOwnListing),
		errors.Is(err, user.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrInvalidDates),
		errors.Is(err, booking.ErrHostNoWallet),
		errors.Is(err, listing.ErrInvalidListing),
		errors.Is(err, listing.ErrInvalidAddress),
		errors.Is(err, listing.ErrInvalidDates),
		errors.Is(err, listing.ErrNoCountry),
		errors.Is(err, user.ErrMissingCode),
		errors.Is(err, storage.ErrInvalidImage),
		errors.Is(err, availability.ErrMalformedIndex):
		return http.StatusBadRequest
	case errors.Is(err, payment.ErrChargeFailed):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Internal details stay in the log.
func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, status, message, "")
		return
	}
	utils.JSONError(c, status, message, err.Error())
}
