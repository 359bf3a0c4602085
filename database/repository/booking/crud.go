// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"swimly/models"
)

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.Status = models.BookingStatusConfirmed
	booking.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// A concurrent confirmation got here first; hand back its record.
			return r.GetByReference(ctx, booking.Reference)
		}
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return booking, nil
}

func (r *mongoBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"reference": reference}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}
