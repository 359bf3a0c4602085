package models

import "time"

// Timeslot represents a bookable class window at a given location.
type Timeslot struct {
	ID       string    `bson:"id" json:"id"`
	Start    time.Time `bson:"start" json:"start"`
	End      time.Time `bson:"end,omitempty" json:"end,omitempty"`
	Location string    `bson:"location" json:"location"`
	Capacity int       `bson:"capacity" json:"capacity"` // total seats, 1 for single-seat slots
	Booked   int       `bson:"booked" json:"booked"`     // confirmed claims; never exceeds Capacity
	Version  int       `bson:"version" json:"version"`
	// References of payments that have claimed a seat. Guarantees a claim
	// is applied at most once per payment reference.
	ClaimRefs []string `bson:"claimRefs,omitempty" json:"-"`
}

// SpotsLeft returns the remaining capacity of the slot.
func (t Timeslot) SpotsLeft() int {
	left := t.Capacity - t.Booked
	if left < 0 {
		return 0
	}
	return left
}

// HasClaim reports whether the given payment reference already holds a seat.
func (t Timeslot) HasClaim(reference string) bool {
	for _, ref := range t.ClaimRefs {
		if ref == reference {
			return true
		}
	}
	return false
}

// AvailableSlot is the client-facing view of a slot with remaining capacity.
type AvailableSlot struct {
	ID        string    `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end,omitempty"`
	Location  string    `json:"location"`
	SpotsLeft int       `json:"spotsLeft"`
}

// CreateTimeslotsRequest defines the payload for the admin seeding endpoint.
type CreateTimeslotsRequest struct {
	Timeslots []Timeslot `json:"timeslots" binding:"required"`
}
