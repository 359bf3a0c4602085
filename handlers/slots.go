package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"swimly/models"
	"swimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	availabilityCacheKey = "slots:available"
	availabilityCacheTTL = 30 * time.Second
)

// GetAvailableSlots lists bookable slots in the forward-looking window. The
// response is cached briefly in Redis since it is the landing-page query.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, availabilityCacheKey).Result(); err == nil {
			var slots []models.AvailableSlot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				c.JSON(http.StatusOK, gin.H{"slots": slots})
				return
			}
		}
	}

	slots, err := h.Service.Availability(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			if err := h.Cache.Set(ctx, availabilityCacheKey, data, availabilityCacheTTL).Err(); err != nil {
				h.Logger.Warn("failed to cache availability", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
