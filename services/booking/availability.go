package booking

import (
	"context"
	"fmt"
	"time"

	"swimly/models"
)

const defaultWindow = 30 * 24 * time.Hour

// Availability returns all future slots within the lookahead window that
// still have spots remaining, ordered by start time ascending. Read-only.
func (s *DefaultBookingService) Availability(ctx context.Context) ([]models.AvailableSlot, error) {
	window := s.Window
	if window <= 0 {
		window = defaultWindow
	}

	now := time.Now().UTC()
	slots, err := s.Slots.ListAvailable(ctx, now, now.Add(window))
	if err != nil {
		return nil, fmt.Errorf("failed to list available slots: %w", err)
	}

	out := make([]models.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, models.AvailableSlot{
			ID:        slot.ID,
			Start:     slot.Start,
			End:       slot.End,
			Location:  slot.Location,
			SpotsLeft: slot.SpotsLeft(),
		})
	}
	return out, nil
}
