package models

import "time"

// Payment status values. Transitions are one-way: INITIATED -> PAID or
// INITIATED -> FAILED. A transition to PAID is idempotent.
const (
	PaymentStatusInitiated = "INITIATED"
	PaymentStatusPaid      = "PAID"
	PaymentStatusFailed    = "FAILED"
)

// PaymentMetadata carries the local request context that would otherwise be
// lost across the gateway redirect.
type PaymentMetadata struct {
	SlotID string `bson:"slotId" json:"slotId"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Payment is a payment attempt, created before the provider is contacted and
// keyed by a locally generated unique reference.
type Payment struct {
	ID        string          `bson:"id" json:"id"`
	Reference string          `bson:"reference" json:"reference"` // unique, immutable
	Name      string          `bson:"name" json:"name"`
	Email     string          `bson:"email" json:"email"`
	Phone     string          `bson:"phone" json:"phone"`
	Amount    int64           `bson:"amount" json:"amount"` // minor units (kobo)
	Status    string          `bson:"status" json:"status"`
	Metadata  PaymentMetadata `bson:"metadata" json:"metadata"`
	// Raw verification payload from the gateway, kept for audit.
	GatewayResponse map[string]interface{} `bson:"gatewayResponse,omitempty" json:"-"`
	CreatedAt       time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time              `bson:"updated_at" json:"updated_at"`
}
