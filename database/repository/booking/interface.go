// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"swimly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound indicates that no booking matches the given reference.
var ErrNotFound = errors.New("booking not found")

type BookingRepository interface {
	// Create inserts the booking. If a booking already exists for the same
	// payment reference the existing record is returned instead: the unique
	// reference index enforces at-most-one booking per payment.
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
