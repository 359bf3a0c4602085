// File: database/repository/timeslot/claim.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Claim performs the one concurrency-sensitive write of the system. The
// filter and update form a single compare-and-set: the seat count only
// increments if capacity remains at the moment the server applies the
// update, so two racing confirmations can never both take the last seat.
// Embedding the payment reference in the same write makes the claim
// idempotent per reference.
func (r *mongoTimeslotRepo) Claim(ctx context.Context, slotID, reference string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":        slotID,
		"claimRefs": bson.M{"$ne": reference},
		"$expr":     bson.M{"$lt": bson.A{"$booked", "$capacity"}},
	}
	update := bson.M{
		"$inc":      bson.M{"booked": 1, "version": 1},
		"$addToSet": bson.M{"claimRefs": reference},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to claim timeslot: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// No document matched: the slot is either unknown, already claimed by
	// this reference, or out of capacity. Disambiguate with a read.
	slot, err := r.GetByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.HasClaim(reference) {
		return nil
	}
	return ErrSlotFull
}
