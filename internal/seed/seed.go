// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"atelier/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumArtists  int
	NumArtworks int
	ShouldClean bool
	SkipBcrypt  bool
	// MaxDays spreads generated created_at timestamps over this many days back.
	MaxDays int
}

// Seed populates the database with demo artists, artworks, comments and likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d artists and %d artworks...", opts.NumArtists, opts.NumArtworks)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	artists := make([]*models.User, 0, opts.NumArtists)
	for i := 0; i < opts.NumArtists; i++ {
		artist, err := f.CreateArtist()
		if err != nil {
			log.Printf("Failed to create artist: %v", err)
			continue
		}
		artists = append(artists, artist)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d artists...", i)
		}
	}
	if len(artists) == 0 {
		return fmt.Errorf("no artists could be created")
	}
	log.Printf("%d artists created", len(artists))

	artworks := make([]*models.Artwork, 0, opts.NumArtworks)
	for i := 0; i < opts.NumArtworks; i++ {
		artist := artists[f.rng.Intn(len(artists))]
		artwork, err := f.CreateArtwork(artist)
		if err != nil {
			return fmt.Errorf("failed to create artwork: %w", err)
		}
		artworks = append(artworks, artwork)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d artworks...", i)
		}
	}
	log.Printf("%d artworks created", len(artworks))

	// Scatter comments and likes over the catalog.
	comments := 0
	for _, artwork := range artworks {
		for i := 0; i < f.rng.Intn(5); i++ {
			commenter := artists[f.rng.Intn(len(artists))]
			if _, err := f.CreateComment(commenter, artwork); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
		for i := 0; i < f.rng.Intn(8); i++ {
			admirer := artists[f.rng.Intn(len(artists))]
			_ = f.CreateLike(admirer, artwork)
		}
	}
	log.Printf("%d comments created", comments)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`TRUNCATE TABLE likes, comments, artworks, users RESTART IDENTITY CASCADE;`).Error
	}
	for _, table := range []string{"likes", "comments", "artworks", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
