package notification

import (
	"context"
	"fmt"

	"swimly/models"
	"swimly/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NotificationService queues outbound mail. All methods are fire-and-forget
// from the reconciliation engine's perspective: delivery happens in the
// background worker and a queue failure never rolls back a booking.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking, slot models.Timeslot) error
	SendOpsAlert(ctx context.Context, subject, body string) error
}

// DefaultNotificationService enqueues asynq email tasks.
type DefaultNotificationService struct {
	Client   *asynq.Client
	OpsEmail string
	Logger   *zap.Logger
}

func NewDefaultNotificationService(client *asynq.Client, opsEmail string, logger *zap.Logger) (*DefaultNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &DefaultNotificationService{
		Client:   client,
		OpsEmail: opsEmail,
		Logger:   logger,
	}, nil
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, booking models.Booking, slot models.Timeslot) error {
	if err := s.enqueue(ctx, tasks.EmailPayload{
		To:      booking.Email,
		Subject: "Your Swimly class booking is confirmed",
		HTML:    confirmationHTML(booking, slot),
	}); err != nil {
		return err
	}

	// Admin copy; best-effort.
	if s.OpsEmail != "" {
		if err := s.enqueue(ctx, tasks.EmailPayload{
			To:      s.OpsEmail,
			Subject: "New booking received",
			HTML:    adminCopyHTML(booking, slot),
		}); err != nil {
			s.Logger.Warn("failed to queue admin booking copy",
				zap.String("reference", booking.Reference), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultNotificationService) SendOpsAlert(ctx context.Context, subject, body string) error {
	if s.OpsEmail == "" {
		return fmt.Errorf("no ops email configured")
	}
	return s.enqueue(ctx, tasks.EmailPayload{
		To:      s.OpsEmail,
		Subject: subject,
		HTML:    "<p>" + body + "</p>",
	})
}

func (s *DefaultNotificationService) enqueue(ctx context.Context, payload tasks.EmailPayload) error {
	task, err := tasks.NewEmailTask(payload)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	return nil
}
