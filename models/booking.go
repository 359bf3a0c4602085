package models

import "time"

// BookingStatusConfirmed is the only booking status: a booking is created
// only after its payment is already confirmed and the slot claimed.
const BookingStatusConfirmed = "CONFIRMED"

// Booking represents a confirmed booking record. Immutable once created.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	SlotID    string    `bson:"slotId" json:"slotId"`
	PaymentID string    `bson:"paymentId" json:"paymentId"`
	Reference string    `bson:"reference" json:"reference"` // payment reference, unique
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
