package booking

import (
	"context"
	"time"

	bookingRepo "swimly/database/repository/booking"
	paymentRepo "swimly/database/repository/payment"
	timeslotRepo "swimly/database/repository/timeslot"
	"swimly/models"
	"swimly/services/gateway"
	"swimly/services/notification"

	"go.uber.org/zap"
)

// InitiateRequest carries the payer's details and slot choice.
type InitiateRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	SlotID string `json:"slotId"`
	Amount int64  `json:"amount"` // minor units (kobo)
	Notes  string `json:"notes,omitempty"`
}

// InitiateResult returns the hosted checkout URL and the locally generated
// payment reference that correlates the rest of the workflow.
type InitiateResult struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
}

// ConfirmResult reports whether a payment has been reconciled into a booking.
type ConfirmResult struct {
	Confirmed     bool            `json:"confirmed"`
	PaymentStatus string          `json:"paymentStatus"`
	Booking       *models.Booking `json:"booking,omitempty"`
}

// BookingService orchestrates initialize -> verify/webhook -> slot claim ->
// booking creation.
type BookingService interface {
	Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error)
	// Confirm reconciles a payment by reference. It is idempotent and safe
	// to call concurrently from the poll and webhook paths.
	Confirm(ctx context.Context, reference string) (*ConfirmResult, error)
	Availability(ctx context.Context) ([]models.AvailableSlot, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Slots       timeslotRepo.TimeslotRepository
	Payments    paymentRepo.PaymentRepository
	Bookings    bookingRepo.BookingRepository
	Gateway     gateway.Client
	Notifier    notification.NotificationService
	CallbackURL string        // where the provider redirects the payer after checkout
	Window      time.Duration // availability lookahead, defaults to 30 days
	Logger      *zap.Logger
}
