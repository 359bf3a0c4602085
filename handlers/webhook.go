package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"swimly/services/booking"
	"swimly/services/gateway"
	"swimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives Paystack's push notifications.
type WebhookHandler struct {
	Service booking.BookingService
	Secret  string
	Logger  *zap.Logger
}

func NewWebhookHandler(svc booking.BookingService, secret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		Service: svc,
		Secret:  secret,
		Logger:  logger,
	}
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

// HandlePaystackEvent authenticates the signature over the raw body before
// reading anything out of the payload, then funnels charge.success events
// into the same confirm path the redirect poll uses.
func (h *WebhookHandler) HandlePaystackEvent(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid body", err.Error())
		return
	}

	signature := c.GetHeader("x-paystack-signature")
	if !gateway.ValidateSignature(rawBody, signature, h.Secret) {
		h.Logger.Warn("webhook rejected: invalid signature")
		utils.JSONError(c, http.StatusUnauthorized, "invalid signature", "")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid event payload", err.Error())
		return
	}

	if event.Event != "charge.success" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	if event.Data.Reference == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid event payload", "missing reference")
		return
	}

	// The event's own claim of success is not trusted; Confirm re-verifies
	// with the provider before any state transition.
	if _, err := h.Service.Confirm(c.Request.Context(), event.Data.Reference); err != nil {
		switch {
		case errors.Is(err, gateway.ErrUnavailable), errors.Is(err, gateway.ErrRejected):
			// Non-2xx makes the provider redeliver; confirm is idempotent.
			utils.JSONError(c, http.StatusBadGateway, "verification failed", err.Error())
			return
		case errors.Is(err, booking.ErrSlotUnavailableAfterPayment):
			// Already escalated inside the engine; acknowledge the event so
			// the provider stops redelivering.
			h.Logger.Error("webhook: paid payment could not be seated",
				zap.String("reference", event.Data.Reference))
		default:
			h.Logger.Error("webhook: confirm failed",
				zap.String("reference", event.Data.Reference), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
