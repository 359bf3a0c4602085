// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"
	"errors"
	"time"

	"swimly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound indicates that no timeslot matches the given id.
	ErrNotFound = errors.New("timeslot not found")
	// ErrSlotFull indicates a claim failed because the slot has no seats left.
	ErrSlotFull = errors.New("timeslot has no remaining capacity")
)

type TimeslotRepository interface {
	CreateMany(ctx context.Context, slots []models.Timeslot) ([]string, error)
	GetByID(ctx context.Context, slotID string) (*models.Timeslot, error)
	ListAvailable(ctx context.Context, from, until time.Time) ([]models.Timeslot, error)
	// Claim consumes one unit of the slot's remaining capacity for the given
	// payment reference. The update is a single atomic conditional write:
	// it succeeds only if capacity remains and the reference has not claimed
	// this slot before. Claiming twice with the same reference is a no-op.
	Claim(ctx context.Context, slotID, reference string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoTimeslotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeslotRepo constructs a MongoDB-backed TimeslotRepository.
func NewMongoTimeslotRepo(db *mongo.Database) TimeslotRepository {
	return &mongoTimeslotRepo{
		coll: db.Collection("timeslots"),
	}
}
