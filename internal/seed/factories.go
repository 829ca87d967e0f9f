// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"atelier/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	mediums = []string{
		"oil on canvas", "acrylic", "watercolor", "gouache", "ink",
		"charcoal", "digital", "mixed media", "sculpture", "photography",
		"linocut", "etching", "pastel", "collage",
	}

	tagPool = []string{
		"abstract", "portrait", "landscape", "seascape", "still life",
		"surreal", "minimal", "figurative", "urban", "nature", "wave",
		"studies", "commission", "plein air", "monochrome", "color study",
		"botanical", "architecture", "night", "light",
	}

	socialProviders = []string{"instagram", "behance", "dribbble", "website"}
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateArtist constructs and persists a sample `models.User` with an
// artist-flavored profile. Optional override functions may modify the
// generated user before saving.
func (f *Factory) CreateArtist(overrides ...func(*models.User)) (*models.User, error) {
	username := gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999))
	user := &models.User{
		Username:     username,
		Email:        gofakeit.Email(),
		Bio:          gofakeit.Sentence(12),
		ProfileImage: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		BannerImage:  fmt.Sprintf("https://picsum.photos/seed/banner-%s/1200/400", gofakeit.UUID()),
		SocialLinks:  f.socialLinks(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.PasswordHash = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.PasswordHash = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (f *Factory) socialLinks(providers ...string) models.StringMap {
	if len(providers) == 0 {
		n := f.rng.Intn(3) + 1
		providers = make([]string, 0, n)
		for _, p := range f.rng.Perm(len(socialProviders))[:n] {
			providers = append(providers, socialProviders[p])
		}
	}
	links := make(models.StringMap, len(providers))
	for _, p := range providers {
		links[p] = gofakeit.URL()
	}
	return links
}

// CreateArtwork constructs and persists a sample `models.Artwork` for the
// given artist with a realistic created_at spread.
func (f *Factory) CreateArtwork(artist *models.User, overrides ...func(*models.Artwork)) (*models.Artwork, error) {
	artwork := &models.Artwork{
		ArtistID:    artist.ID,
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 3, 6, "\n"),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/1000/800", gofakeit.UUID()),
		Medium:      mediums[f.rng.Intn(len(mediums))],
		Year:        time.Now().Year() - f.rng.Intn(8),
		Tags:        f.tags(),
	}

	// roughly half the pieces are for sale
	if f.rng.Float32() < 0.5 {
		artwork.Price = float64(gofakeit.Number(50, 5000))
	}
	// some pieces document their process
	if f.rng.Float32() < 0.3 {
		n := f.rng.Intn(4) + 1
		images := make(models.StringList, 0, n)
		for i := 0; i < n; i++ {
			images = append(images, fmt.Sprintf("https://picsum.photos/seed/process-%s/800/600", gofakeit.UUID()))
		}
		artwork.ProcessImages = images
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 180
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	artwork.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(artwork)
	}

	if err := f.db.Create(artwork).Error; err != nil {
		return nil, err
	}
	return artwork, nil
}

func (f *Factory) tags() models.StringList {
	n := f.rng.Intn(4) + 1
	tags := make(models.StringList, 0, n)
	for _, i := range f.rng.Perm(len(tagPool))[:n] {
		tags = append(tags, tagPool[i])
	}
	return tags
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided artwork authored by the provided user.
func (f *Factory) CreateComment(user *models.User, artwork *models.Artwork, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:      gofakeit.Sentence(8),
		UserID:    user.ID,
		ArtworkID: artwork.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `artwork`. Duplicate pairs are
// silently skipped so random seeding never trips the unique index.
func (f *Factory) CreateLike(user *models.User, artwork *models.Artwork) error {
	err := f.db.Exec(
		"INSERT INTO likes (artwork_id, user_id, created_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT (artwork_id, user_id) DO NOTHING",
		artwork.ID, user.ID,
	).Error
	if err != nil {
		log.Printf("Failed to create like for user %d on artwork %d: %v", user.ID, artwork.ID, err)
	}
	return err
}
