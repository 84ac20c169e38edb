package conference

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"conference-hub/core/stats"
	"conference-hub/feature/conference/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, docs map[string]any) *fiber.App {
	t.Helper()

	service := newTestService(t, docs, stats.Config{}, false)

	app := fiber.New()
	feature := NewFeature(service, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleSessionTypesRoute(t *testing.T) {
	app := setupTestApp(t, referenceFeedDocs())

	req := httptest.NewRequest("GET", "/conference/session-types", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var sessionTypes []models.SessionType
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sessionTypes))
	require.Len(t, sessionTypes, 1)
	assert.Equal(t, "Conference", sessionTypes[0].Name)
}

func TestHandleRoomsRoute(t *testing.T) {
	app := setupTestApp(t, referenceFeedDocs())

	req := httptest.NewRequest("GET", "/conference/rooms", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rooms []models.Room
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rooms))
	assert.Len(t, rooms, 2)
}

func TestHandleTalkRoute(t *testing.T) {
	docs := referenceFeedDocs()
	docs["/talks/talk-1"] = map[string]any{
		"id":      "talk-1",
		"title":   "Structured Concurrency",
		"trackId": "track-1",
	}
	app := setupTestApp(t, docs)

	req := httptest.NewRequest("GET", "/conference/talks/talk-1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var talk models.Talk
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&talk))
	assert.Equal(t, "Structured Concurrency", talk.Title)
	require.NotNil(t, talk.Track)
	assert.Equal(t, "Java", talk.Track.Name)
}

func TestHandleTalkNotFound(t *testing.T) {
	app := setupTestApp(t, referenceFeedDocs())

	req := httptest.NewRequest("GET", "/conference/talks/no-such-talk", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSpeakerNotFound(t *testing.T) {
	app := setupTestApp(t, referenceFeedDocs())

	req := httptest.NewRequest("GET", "/conference/speakers/no-such-speaker", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleScheduleRoute(t *testing.T) {
	docs := referenceFeedDocs()
	docs["/schedules/monday"] = []any{
		map[string]any{
			"id":       "slot-1",
			"fromDate": "2025-11-10T09:00:00Z",
			"toDate":   "2025-11-10T09:50:00Z",
			"roomId":   "room-1",
		},
	}
	app := setupTestApp(t, docs)

	req := httptest.NewRequest("GET", "/conference/schedule/monday", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var slots []models.ScheduleSlot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&slots))
	require.Len(t, slots, 1)
	assert.Equal(t, "slot-1", slots[0].ID)
}

func TestHandleRatedTalksRouteWithoutStats(t *testing.T) {
	app := setupTestApp(t, referenceFeedDocs())

	req := httptest.NewRequest("GET", "/conference/rated/monday", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rated []models.RatedTalk
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rated))
	assert.Empty(t, rated)
}
