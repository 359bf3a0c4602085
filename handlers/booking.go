package handlers

import (
	"net/http"

	"swimly/services/booking"
	"swimly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Cache   *redis.Client
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Service: svc,
		Cache:   cache,
		Logger:  logger,
	}
}

// InitiateBooking starts a payment for a chosen slot and returns the hosted
// checkout URL plus the payment reference.
func (h *BookingHandler) InitiateBooking(c *gin.Context) {
	var req booking.InitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := h.Service.Initiate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// VerifyPayment is the poll path: the payer lands here after the gateway
// redirect with their reference as a query parameter.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "missing reference query parameter")
		return
	}

	res, err := h.Service.Confirm(c.Request.Context(), reference)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
