package handlers

import (
	"net/http"

	timeslotRepo "swimly/database/repository/timeslot"
	"swimly/models"
	"swimly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdminHandler exposes the administrative seeding endpoints.
type AdminHandler struct {
	Slots  timeslotRepo.TimeslotRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewAdminHandler(slots timeslotRepo.TimeslotRepository, cache *redis.Client, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Slots:  slots,
		Cache:  cache,
		Logger: logger,
	}
}

// CreateTimeslots bulk-inserts bookable slots.
func (h *AdminHandler) CreateTimeslots(c *gin.Context) {
	var req models.CreateTimeslotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if len(req.Timeslots) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "timeslots must not be empty")
		return
	}
	for _, slot := range req.Timeslots {
		if slot.Start.IsZero() || slot.Location == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "each timeslot needs a start time and location")
			return
		}
	}

	ids, err := h.Slots.CreateMany(c.Request.Context(), req.Timeslots)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create timeslots", err.Error())
		return
	}

	// New slots change the availability listing immediately.
	if h.Cache != nil {
		if err := h.Cache.Del(c.Request.Context(), availabilityCacheKey).Err(); err != nil {
			h.Logger.Warn("failed to invalidate availability cache", zap.Error(err))
		}
	}

	h.Logger.Info("timeslots created", zap.Int("count", len(ids)))
	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}
