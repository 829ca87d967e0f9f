package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArtwork(t *testing.T) {
	s := newTestServer(t)
	artist := seedUser(t, s, "creator", false)

	app := newAuthedApp(t, s, artist.ID)
	app.Post("/artworks", s.CreateArtwork)

	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]any{
				"title":     "Morning Light",
				"image_url": "https://img.example.com/morning.jpg",
				"tags":      []string{"landscape", "dawn"},
				"medium":    "watercolor",
				"year":      2025,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Title",
			body: map[string]any{
				"image_url": "https://img.example.com/untitled.jpg",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing Image",
			body: map[string]any{
				"title": "No Image",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/artworks", tt.body), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				body := decodeBody(t, resp)
				assert.Equal(t, "Morning Light", body["title"])
				assert.Equal(t, float64(artist.ID), body["artist_id"])
			} else {
				_ = resp.Body.Close()
			}
		})
	}
}

func TestGetArtworks_ListAndFilter(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(t, s)

	artist := seedUser(t, s, "galleryowner", false)
	seedArtwork(t, s, artist.ID, "oil-piece")
	inked := &models.Artwork{ArtistID: artist.ID, Title: "ink-piece", ImageURL: "x", Medium: "ink", Year: 2024}
	require.NoError(t, s.db.Create(inked).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/artworks", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var all []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	_ = resp.Body.Close()
	assert.Len(t, all, 2)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/artworks?medium=ink", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var filtered []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&filtered))
	_ = resp.Body.Close()
	require.Len(t, filtered, 1)
	assert.Equal(t, "ink-piece", filtered[0]["title"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/artworks?year=2024", nil), -1)
	require.NoError(t, err)
	var byYear []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&byYear))
	_ = resp.Body.Close()
	require.Len(t, byYear, 1)
	assert.Equal(t, "ink-piece", byYear[0]["title"])
}

func TestSearchArtworksHandler(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(t, s)

	artist := seedUser(t, s, "seeker", false)
	seedArtwork(t, s, artist.ID, "The Great Wave")
	seedArtwork(t, s, artist.ID, "Still Life")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/artworks/search?q=wave", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var results []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	_ = resp.Body.Close()
	require.Len(t, results, 1)
	assert.Equal(t, "The Great Wave", results[0]["title"])

	// Blank query is a validation error.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/artworks/search?q=", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGetArtwork_MalformedIDIsNotFound(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(t, s)

	for _, path := range []string{"/api/artworks/abc", "/api/artworks/0", "/api/artworks/999999"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "path %s", path)
		_ = resp.Body.Close()
	}
}

func TestUpdateArtwork_OwnershipEnforced(t *testing.T) {
	s := newTestServer(t)
	owner := seedUser(t, s, "rightful", false)
	intruder := seedUser(t, s, "intruder", false)
	artwork := seedArtwork(t, s, owner.ID, "contested")

	ownerApp := newAuthedApp(t, s, owner.ID)
	ownerApp.Put("/artworks/:id", s.UpdateArtwork)
	intruderApp := newAuthedApp(t, s, intruder.ID)
	intruderApp.Put("/artworks/:id", s.UpdateArtwork)

	body := map[string]any{"title": "retitled"}

	resp, err := intruderApp.Test(jsonRequest(t, http.MethodPut, "/artworks/"+itoa(artwork.ID), body), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = ownerApp.Test(jsonRequest(t, http.MethodPut, "/artworks/"+itoa(artwork.ID), body), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "retitled", updated["title"])
	// Untouched fields survive a partial update.
	assert.Equal(t, "oil", updated["medium"])
	assert.Equal(t, float64(2025), updated["year"])

	// An explicit zero clears year and price instead of being dropped.
	resp, err = ownerApp.Test(jsonRequest(t, http.MethodPut, "/artworks/"+itoa(artwork.ID), map[string]any{"year": 0, "price": 0}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	cleared := decodeBody(t, resp)
	assert.Equal(t, float64(0), cleared["year"])
	assert.Equal(t, float64(0), cleared["price"])
	assert.Equal(t, "retitled", cleared["title"])
}

func TestDeleteArtwork(t *testing.T) {
	s := newTestServer(t)
	owner := seedUser(t, s, "demolisher", false)
	intruder := seedUser(t, s, "bystander", false)
	admin := seedUser(t, s, "curator", true)
	commenter := seedUser(t, s, "remarker", false)

	artwork := seedArtwork(t, s, owner.ID, "short-lived")
	require.NoError(t, s.db.Create(&models.Comment{ArtworkID: artwork.ID, UserID: commenter.ID, Text: "gone soon"}).Error)
	require.NoError(t, s.db.Create(&models.Like{ArtworkID: artwork.ID, UserID: commenter.ID}).Error)

	intruderApp := newAuthedApp(t, s, intruder.ID)
	intruderApp.Delete("/artworks/:id", s.DeleteArtwork)
	resp, err := intruderApp.Test(httptest.NewRequest(http.MethodDelete, "/artworks/"+itoa(artwork.ID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	ownerApp := newAuthedApp(t, s, owner.ID)
	ownerApp.Delete("/artworks/:id", s.DeleteArtwork)
	resp, err = ownerApp.Test(httptest.NewRequest(http.MethodDelete, "/artworks/"+itoa(artwork.ID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Comments and likes disappear with the artwork.
	var commentCount, likeCount int64
	require.NoError(t, s.db.Model(&models.Comment{}).Where("artwork_id = ?", artwork.ID).Count(&commentCount).Error)
	require.NoError(t, s.db.Model(&models.Like{}).Where("artwork_id = ?", artwork.ID).Count(&likeCount).Error)
	assert.Zero(t, commentCount)
	assert.Zero(t, likeCount)

	// Admin can remove someone else's artwork.
	other := seedArtwork(t, s, owner.ID, "moderated-away")
	adminApp := newAuthedApp(t, s, admin.ID)
	adminApp.Delete("/artworks/:id", s.DeleteArtwork)
	resp, err = adminApp.Test(httptest.NewRequest(http.MethodDelete, "/artworks/"+itoa(other.ID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGetUserArtworksHandler(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(t, s)

	alice := seedUser(t, s, "alice-page", false)
	bob := seedUser(t, s, "bob-page", false)
	seedArtwork(t, s, alice.ID, "alice-only")
	seedArtwork(t, s, bob.ID, "bob-only")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/"+itoa(alice.ID)+"/artworks", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var results []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	_ = resp.Body.Close()
	require.Len(t, results, 1)
	assert.Equal(t, "alice-only", results[0]["title"])
}
