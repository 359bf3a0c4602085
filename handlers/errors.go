package handlers

import (
	"errors"
	"net/http"

	bookingRepo "swimly/database/repository/booking"
	paymentRepo "swimly/database/repository/payment"
	timeslotRepo "swimly/database/repository/timeslot"
	"swimly/services/booking"
	"swimly/services/gateway"
	"swimly/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto the HTTP surface: validation 400,
// missing resources 404, upstream gateway trouble 502, the paid-but-unseated
// conflict 409, everything else 500.
func respondError(c *gin.Context, err error) {
	var vErr *booking.ValidationError

	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Error())
	case errors.Is(err, timeslotRepo.ErrSlotFull):
		utils.JSONError(c, http.StatusBadRequest, "slot already booked", "the chosen timeslot has no remaining capacity")
	case errors.Is(err, timeslotRepo.ErrNotFound),
		errors.Is(err, paymentRepo.ErrNotFound),
		errors.Is(err, bookingRepo.ErrNotFound),
		errors.Is(err, gateway.ErrReferenceUnknown):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, booking.ErrSlotUnavailableAfterPayment):
		utils.JSONError(c, http.StatusConflict, "slot unavailable after payment",
			"your payment is recorded; our team will contact you to reassign or refund")
	case errors.Is(err, gateway.ErrUnavailable), errors.Is(err, gateway.ErrRejected):
		utils.JSONError(c, http.StatusBadGateway, "payment gateway error", "please try again later")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "an unexpected error occurred")
	}
}
