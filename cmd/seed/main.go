// Seeds the timeslots collection with sample class windows for the coming
// weeks. Intended for development and first-time setup.
package main

import (
	"context"
	"log"
	"time"

	"swimly/config"
	"swimly/database"
	timeslotRepo "swimly/database/repository/timeslot"
	"swimly/models"

	"go.mongodb.org/mongo-driver/bson"
)

var locations = []string{"Novatel", "Godaif Village", "Lekki Grand View"}

// Class hours per day, local time.
var classHours = []int{9, 11, 15, 17}

func main() {
	config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(ctx, client); err != nil {
			log.Printf("failed to disconnect: %v", err)
		}
	}()

	db := client.Database(config.AppConfig.DatabaseName)

	// Clear existing timeslots.
	if _, err := db.Collection("timeslots").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear timeslots collection: %v", err)
	}

	repo := timeslotRepo.NewMongoTimeslotRepo(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	var slots []models.Timeslot
	today := time.Now().Truncate(24 * time.Hour)
	for day := 1; day <= 21; day++ {
		date := today.AddDate(0, 0, day)
		// No weekend classes.
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for i, hour := range classHours {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.Local)
			slots = append(slots, models.Timeslot{
				Start:    start,
				End:      start.Add(time.Hour),
				Location: locations[(day+i)%len(locations)],
				Capacity: 1,
			})
		}
	}

	ids, err := repo.CreateMany(ctx, slots)
	if err != nil {
		log.Fatalf("failed to insert timeslots: %v", err)
	}
	log.Printf("seeded %d timeslots across %d locations", len(ids), len(locations))
}
