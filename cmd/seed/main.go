// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"evtele/internal/config"
	"evtele/internal/database"
	"evtele/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numReplays := flag.Int("replays", 60, "Number of replays to create")
	guideDays := flag.Int("days", 7, "Days of program guide to generate, centered on today")
	perDay := flag.Int("per-day", 8, "Guide entries per day")
	numComments := flag.Int("comments", 200, "Number of comments to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	dryRun := flag.Bool("dry-run", false, "Build entities without writing to the database")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d guide days, %d replays, %d comments, clean=%v\n",
		*numUsers, *guideDays, *numReplays, *numComments, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:       *numUsers,
		NumReplays:     *numReplays,
		GuideDays:      *guideDays,
		ProgramsPerDay: *perDay,
		NumComments:    *numComments,
		ShouldClean:    *shouldClean && !*dryRun,
		DryRun:         *dryRun,
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with demo data.")
	log.Println("📧 All test users have the password: password123")
}
