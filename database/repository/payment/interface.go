// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"
	"errors"

	"swimly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound indicates that no payment matches the given reference.
	ErrNotFound = errors.New("payment not found")
	// ErrDuplicateReference indicates an insert collided on the unique
	// reference index.
	ErrDuplicateReference = errors.New("payment reference already exists")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByReference(ctx context.Context, reference string) (*models.Payment, error)
	// MarkPaid applies the INITIATED -> PAID transition as a conditional
	// update and stores the raw gateway payload. Calling it when the payment
	// is already PAID is a no-op; a PAID status is never reverted.
	MarkPaid(ctx context.Context, reference string, gatewayResponse map[string]interface{}) (*models.Payment, error)
	// MarkFailed applies the INITIATED -> FAILED transition. It never
	// overwrites a PAID payment.
	MarkFailed(ctx context.Context, reference string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a MongoDB-backed PaymentRepository.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &mongoPaymentRepo{
		coll: db.Collection("payments"),
	}
}
