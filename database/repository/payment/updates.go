// File: database/repository/payment/updates.go
package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swimly/models"
)

func (r *mongoPaymentRepo) MarkPaid(ctx context.Context, reference string, gatewayResponse map[string]interface{}) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Conditional on the current status so a concurrent confirmation, or a
	// replayed webhook, cannot apply the transition twice.
	filter := bson.M{"reference": reference, "status": models.PaymentStatusInitiated}
	update := bson.M{"$set": bson.M{
		"status":          models.PaymentStatusPaid,
		"gatewayResponse": gatewayResponse,
		"updated_at":      time.Now().UTC(),
	}}

	var payment models.Payment
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&payment)
	if err == nil {
		return &payment, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to mark payment paid: %w", err)
	}

	// Nothing matched: either the reference is unknown or the transition
	// already happened. Re-read to tell the two apart.
	existing, getErr := r.GetByReference(ctx, reference)
	if getErr != nil {
		return nil, getErr
	}
	if existing.Status == models.PaymentStatusPaid {
		return existing, nil
	}
	return nil, fmt.Errorf("payment %s is %s, cannot mark paid", reference, existing.Status)
}

func (r *mongoPaymentRepo) MarkFailed(ctx context.Context, reference string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"reference": reference, "status": models.PaymentStatusInitiated}
	update := bson.M{"$set": bson.M{
		"status":     models.PaymentStatusFailed,
		"updated_at": time.Now().UTC(),
	}}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}
	return nil
}
