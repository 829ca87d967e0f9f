package server

import (
	"strconv"
	"testing"
	"time"

	"atelier/internal/config"
	"atelier/internal/database"
	"atelier/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a Server against an in-memory SQLite database with no
// Redis. Rate limiting is disabled outside production environments, so the
// full route table is usable in tests.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret-0123456789abcdef0123456789abcdef",
		Env:       "test",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)
	return s
}

// newTestApp returns a Fiber app with the full route table mounted.
func newTestApp(t *testing.T, s *Server) *fiber.App {
	t.Helper()
	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

// newAuthedApp injects a fixed userID into locals, bypassing JWT parsing so
// handler tests can focus on handler behavior.
func newAuthedApp(t *testing.T, s *Server, userID uint) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func seedUser(t *testing.T, s *Server, username string, admin bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Sunlit-Harbor-42"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		IsAdmin:      admin,
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func seedArtwork(t *testing.T, s *Server, artistID uint, title string) *models.Artwork {
	t.Helper()
	artwork := &models.Artwork{
		ArtistID:  artistID,
		Title:     title,
		ImageURL:  "https://img.example.com/" + title + ".jpg",
		Medium:    "oil",
		Year:      2025,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.db.Create(artwork).Error)
	return artwork
}
