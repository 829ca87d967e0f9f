// Command main runs the database seeder for Atelier.
package main

import (
	"flag"
	"log"

	"atelier/internal/config"
	"atelier/internal/database"
	"atelier/internal/seed"
)

func main() {
	numArtists := flag.Int("artists", 25, "Number of artists to create")
	numArtworks := flag.Int("artworks", 150, "Number of artworks to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding (dev only)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d artists, %d artworks, clean=%v\n", *numArtists, *numArtworks, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumArtists:  *numArtists,
		NumArtworks: *numArtworks,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Println("All demo users have the password: password123")
}
