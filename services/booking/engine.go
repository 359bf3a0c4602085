package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "swimly/database/repository/booking"
	timeslotRepo "swimly/database/repository/timeslot"
	"swimly/models"
	"swimly/services/gateway"

	"go.uber.org/zap"
)

// Initiate validates the slot choice, records a pending payment, and asks
// the gateway for a hosted checkout URL. The slot is NOT reserved here: the
// external payment flow can take minutes or be abandoned, so the claim only
// happens at confirmation time.
func (s *DefaultBookingService) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	if err := validateInitiate(req); err != nil {
		return nil, err
	}

	slot, err := s.Slots.GetByID(ctx, req.SlotID)
	if err != nil {
		return nil, err
	}
	if slot.SpotsLeft() <= 0 {
		return nil, timeslotRepo.ErrSlotFull
	}
	if !slot.Start.After(time.Now()) {
		return nil, invalidField("slotId", "slot start time is in the past")
	}

	// Persist the payment before contacting the provider so a crash after
	// this point still leaves a traceable pending record.
	payment := &models.Payment{
		Reference: newReference(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Amount:    req.Amount,
		Status:    models.PaymentStatusInitiated,
		Metadata: models.PaymentMetadata{
			SlotID: req.SlotID,
			Notes:  req.Notes,
		},
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	res, err := s.Gateway.Initialize(ctx, gateway.InitializeRequest{
		Amount:      req.Amount,
		Email:       req.Email,
		Reference:   payment.Reference,
		CallbackURL: s.CallbackURL,
		Metadata: map[string]interface{}{
			"slotId": req.SlotID,
			"name":   req.Name,
			"phone":  req.Phone,
		},
	})
	if err != nil {
		if markErr := s.Payments.MarkFailed(ctx, payment.Reference); markErr != nil {
			s.Logger.Error("failed to mark payment failed after gateway error",
				zap.String("reference", payment.Reference), zap.Error(markErr))
		}
		return nil, err
	}

	s.Logger.Info("payment initiated",
		zap.String("reference", payment.Reference),
		zap.String("slotId", req.SlotID),
		zap.Int64("amount", req.Amount))

	return &InitiateResult{
		Reference:        payment.Reference,
		AuthorizationURL: res.AuthorizationURL,
	}, nil
}

// Confirm reconciles a payment by reference. Both the poll path and the
// webhook path funnel into this method; every step is either idempotent or
// guarded by a conditional write, so concurrent calls for the same reference
// converge on a single booking.
func (s *DefaultBookingService) Confirm(ctx context.Context, reference string) (*ConfirmResult, error) {
	payment, err := s.Payments.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	switch payment.Status {
	case models.PaymentStatusPaid:
		b, err := s.Bookings.GetByReference(ctx, reference)
		if err == nil {
			return confirmed(b), nil
		}
		if !errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, err
		}
		// PAID with no booking: an earlier confirmation crashed between the
		// payment transition and the claim. Resume from the claim; both
		// halves are idempotent per reference.
		return s.finalize(ctx, payment)
	case models.PaymentStatusFailed:
		return notConfirmed(models.PaymentStatusFailed), nil
	}

	// The payment record alone is never trusted as proof of success; the
	// provider is the source of truth.
	verdict, err := s.Gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	switch verdict.Status {
	case gateway.StatusSuccess:
		// fall through to reconcile
	case gateway.StatusFailed:
		if err := s.Payments.MarkFailed(ctx, reference); err != nil {
			return nil, err
		}
		return notConfirmed(models.PaymentStatusFailed), nil
	default:
		// Still pending on the provider side; leave the payment INITIATED so
		// a later poll or webhook can settle it.
		return notConfirmed(models.PaymentStatusInitiated), nil
	}

	if verdict.Amount != payment.Amount {
		s.Logger.Error("verified amount does not match recorded payment",
			zap.String("reference", reference),
			zap.Int64("recorded", payment.Amount),
			zap.Int64("verified", verdict.Amount))
		if err := s.Payments.MarkFailed(ctx, reference); err != nil {
			return nil, err
		}
		return notConfirmed(models.PaymentStatusFailed), nil
	}

	payment, err = s.Payments.MarkPaid(ctx, reference, verdict.Raw)
	if err != nil {
		return nil, err
	}
	return s.finalize(ctx, payment)
}

// finalize claims the slot recorded in the payment metadata and creates the
// booking. Requires the payment to already be PAID.
func (s *DefaultBookingService) finalize(ctx context.Context, payment *models.Payment) (*ConfirmResult, error) {
	slotID := payment.Metadata.SlotID

	if err := s.Slots.Claim(ctx, slotID, payment.Reference); err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotFull) {
			s.escalate(ctx, payment)
			return nil, ErrSlotUnavailableAfterPayment
		}
		return nil, err
	}

	created, err := s.Bookings.Create(ctx, &models.Booking{
		Name:      payment.Name,
		Email:     payment.Email,
		Phone:     payment.Phone,
		SlotID:    slotID,
		PaymentID: payment.ID,
		Reference: payment.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Logger.Info("booking confirmed",
		zap.String("reference", payment.Reference),
		zap.String("bookingId", created.ID),
		zap.String("slotId", slotID))

	s.notify(ctx, created)
	return confirmed(created), nil
}

// notify sends the confirmation email. Fire-and-forget: a notifier failure
// never affects the booking.
func (s *DefaultBookingService) notify(ctx context.Context, b *models.Booking) {
	slot, err := s.Slots.GetByID(ctx, b.SlotID)
	if err != nil {
		s.Logger.Warn("could not load slot for confirmation email",
			zap.String("slotId", b.SlotID), zap.Error(err))
		slot = &models.Timeslot{ID: b.SlotID}
	}
	if err := s.Notifier.SendBookingConfirmation(ctx, *b, *slot); err != nil {
		s.Logger.Warn("failed to queue booking confirmation email",
			zap.String("reference", b.Reference), zap.Error(err))
	}
}

// escalate surfaces a paid-but-unseatable payment to operations. The PAID
// status is never reverted; someone has to reassign the payer or refund.
func (s *DefaultBookingService) escalate(ctx context.Context, payment *models.Payment) {
	s.Logger.Error("slot unavailable after payment, manual reconciliation required",
		zap.String("reference", payment.Reference),
		zap.String("slotId", payment.Metadata.SlotID),
		zap.Int64("amount", payment.Amount))

	subject := "Paid booking could not be seated: " + payment.Reference
	body := fmt.Sprintf(
		"Payment %s (%s, %s) is PAID for %d kobo but slot %s filled up before the claim. Reassign or refund.",
		payment.Reference, payment.Name, payment.Email, payment.Amount, payment.Metadata.SlotID)
	if err := s.Notifier.SendOpsAlert(ctx, subject, body); err != nil {
		s.Logger.Error("failed to queue ops alert",
			zap.String("reference", payment.Reference), zap.Error(err))
	}
}

func confirmed(b *models.Booking) *ConfirmResult {
	return &ConfirmResult{Confirmed: true, PaymentStatus: models.PaymentStatusPaid, Booking: b}
}

func notConfirmed(status string) *ConfirmResult {
	return &ConfirmResult{Confirmed: false, PaymentStatus: status}
}

func validateInitiate(req InitiateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalidField("name", "required")
	}
	if !strings.Contains(req.Email, "@") {
		return invalidField("email", "must be a valid email address")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return invalidField("phone", "required")
	}
	if strings.TrimSpace(req.SlotID) == "" {
		return invalidField("slotId", "required")
	}
	if req.Amount <= 0 {
		return invalidField("amount", "must be a positive amount in minor units")
	}
	return nil
}
