package conference

import (
	"testing"
	"time"

	"conference-hub/core/record"
	"conference-hub/feature/conference/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceMaps() (map[string]*models.SessionType, map[string]*models.Room, map[string]*models.Track) {
	sessionTypes := map[string]*models.SessionType{
		"st-1": {ID: "st-1", Name: "Conference", Duration: 50 * time.Minute},
	}
	rooms := map[string]*models.Room{
		"room-1": {ID: "room-1", Name: "Room 5", Capacity: 300},
	}
	tracks := map[string]*models.Track{
		"track-1": {ID: "track-1", Name: "Java"},
	}
	return sessionTypes, rooms, tracks
}

func newTestResolver(favoriteCount func(string) *int) *Resolver {
	sessionTypes, rooms, tracks := referenceMaps()
	return NewResolver(sessionTypes, rooms, tracks, favoriteCount)
}

func TestResolveSessionType(t *testing.T) {
	st, err := ResolveSessionType(record.Record{
		"id":          float64(12),
		"name":        "Deep Dive",
		"description": "Long form",
		"cssColor":    "#ff0000",
		"duration":    float64(150),
		"pause":       false,
	})

	require.NoError(t, err)
	assert.Equal(t, "12", st.ID)
	assert.Equal(t, "Deep Dive", st.Name)
	assert.Equal(t, "Long form", st.Description)
	assert.Equal(t, "#ff0000", st.Color)
	assert.Equal(t, 150*time.Minute, st.Duration)
	assert.False(t, st.Pause)
}

func TestResolveSessionTypeMissingFieldsZeroValued(t *testing.T) {
	st, err := ResolveSessionType(record.Record{"id": "st-1"})

	require.NoError(t, err)
	assert.Equal(t, "st-1", st.ID)
	assert.Empty(t, st.Name)
	assert.Zero(t, st.Duration)
}

func TestResolveSessionTypeWrongKindFails(t *testing.T) {
	_, err := ResolveSessionType(record.Record{"id": "st-1", "name": float64(7)})

	require.Error(t, err)
	var kindErr *record.KindError
	assert.ErrorAs(t, err, &kindErr)
	assert.Equal(t, "name", kindErr.Field)
}

func TestResolveRoom(t *testing.T) {
	room, err := ResolveRoom(record.Record{
		"id":       "room-1",
		"name":     "Room 5",
		"capacity": float64(300),
		"weight":   1.5,
	})

	require.NoError(t, err)
	assert.Equal(t, &models.Room{ID: "room-1", Name: "Room 5", Capacity: 300, Weight: 1.5}, room)
}

func TestResolveTrack(t *testing.T) {
	track, err := ResolveTrack(record.Record{
		"id":          "track-1",
		"name":        "Java",
		"description": "All things JVM",
		"imageURL":    "http://example.com/java.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://example.com/java.png", track.AvatarURL)
}

func TestTalkResolvesReferences(t *testing.T) {
	resolver := newTestResolver(nil)

	tests := []struct {
		name string
		rec  record.Record
	}{
		{
			name: "bare id fields",
			rec: record.Record{
				"id":            "talk-1",
				"title":         "Structured Concurrency",
				"sessionTypeId": "st-1",
				"trackId":       "track-1",
			},
		},
		{
			name: "embedded objects",
			rec: record.Record{
				"id":          "talk-1",
				"title":       "Structured Concurrency",
				"sessionType": map[string]any{"id": "st-1"},
				"track":       map[string]any{"id": "track-1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			talk, err := resolver.Talk(tt.rec)

			require.NoError(t, err)
			require.NotNil(t, talk.SessionType)
			assert.Equal(t, "Conference", talk.SessionType.Name)
			require.NotNil(t, talk.Track)
			assert.Equal(t, "Java", talk.Track.Name)
		})
	}
}

func TestTalkUnknownReferencesResolveToNil(t *testing.T) {
	resolver := newTestResolver(nil)

	talk, err := resolver.Talk(record.Record{
		"id":            "talk-1",
		"title":         "Orphan",
		"sessionTypeId": "no-such-type",
		"trackId":       "no-such-track",
	})

	require.NoError(t, err)
	assert.Nil(t, talk.SessionType)
	assert.Nil(t, talk.Track)
}

func TestTalkFavoriteCountPrefersStatistics(t *testing.T) {
	resolver := newTestResolver(func(talkID string) *int {
		assert.Equal(t, "talk-1", talkID)
		count := 42
		return &count
	})

	talk, err := resolver.Talk(record.Record{
		"id":              "talk-1",
		"title":           "Counted",
		"totalFavourites": float64(10),
	})

	require.NoError(t, err)
	assert.Equal(t, 42, talk.FavoriteCount)
}

func TestTalkFavoriteCountFallsBackToFeed(t *testing.T) {
	resolver := newTestResolver(func(string) *int { return nil })

	talk, err := resolver.Talk(record.Record{
		"id":              "talk-1",
		"title":           "Counted",
		"totalFavourites": float64(10),
	})

	require.NoError(t, err)
	assert.Equal(t, 10, talk.FavoriteCount)
}

func TestTalkResolvesNestedCollections(t *testing.T) {
	resolver := newTestResolver(nil)

	talk, err := resolver.Talk(record.Record{
		"id":    "talk-1",
		"title": "Nested",
		"timeSlots": []any{
			map[string]any{"id": "slot-1", "roomId": "room-1"},
		},
		"speakers": []any{
			map[string]any{"id": "sp-1", "firstName": "Ada", "lastName": "Lovelace"},
		},
		"tags": []any{
			map[string]any{"name": "jvm"},
			map[string]any{"name": "concurrency"},
		},
	})

	require.NoError(t, err)
	require.Len(t, talk.ScheduleSlots, 1)
	require.NotNil(t, talk.ScheduleSlots[0].Room)
	assert.Equal(t, "Room 5", talk.ScheduleSlots[0].Room.Name)
	require.Len(t, talk.Speakers, 1)
	assert.Equal(t, "Ada Lovelace", talk.Speakers[0].FullName)
	assert.Equal(t, []string{"jvm", "concurrency"}, talk.Tags)
}

func TestScheduleSlot(t *testing.T) {
	resolver := newTestResolver(nil)

	slot, err := resolver.ScheduleSlot(record.Record{
		"id":              "slot-1",
		"overflow":        true,
		"fromDate":        "2025-11-10T09:00:00Z",
		"toDate":          "2025-11-10T09:50:00Z",
		"totalFavourites": float64(7),
		"roomId":          "room-1",
		"proposal": map[string]any{
			"id":    "talk-1",
			"title": "Scheduled",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "slot-1", slot.ID)
	assert.True(t, slot.Overflow)
	assert.Equal(t, time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC), slot.Start)
	assert.Equal(t, time.Date(2025, 11, 10, 9, 50, 0, 0, time.UTC), slot.End)
	assert.Equal(t, 7, slot.FavoriteCount)
	require.NotNil(t, slot.Room)
	assert.Equal(t, "room-1", slot.Room.ID)
	require.NotNil(t, slot.Talk)
	assert.Equal(t, "Scheduled", slot.Talk.Title)
}

func TestScheduleSlotWithoutProposal(t *testing.T) {
	resolver := newTestResolver(nil)

	slot, err := resolver.ScheduleSlot(record.Record{"id": "slot-1"})

	require.NoError(t, err)
	assert.Nil(t, slot.Talk)
	assert.Nil(t, slot.Room)
	assert.True(t, slot.Start.IsZero())
}

func TestSpeakerNamesTrimmed(t *testing.T) {
	resolver := newTestResolver(nil)

	speaker, err := resolver.Speaker(record.Record{
		"id":        "sp-1",
		"firstName": "  Grace ",
		"lastName":  " Hopper  ",
		"company":   " Navy ",
		"imageUrl":  "http://example.com/grace.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "Grace", speaker.FirstName)
	assert.Equal(t, "Hopper", speaker.LastName)
	assert.Equal(t, "Grace Hopper", speaker.FullName)
	assert.Equal(t, "Navy", speaker.Company)
	assert.Equal(t, "http://example.com/grace.png", speaker.AvatarURL)
}

func TestSpeakerSocialMediaHandles(t *testing.T) {
	resolver := newTestResolver(nil)

	speaker, err := resolver.Speaker(record.Record{
		"id":               "sp-1",
		"twitterHandle":    "@grace",
		"linkedInUsername": "grace-hopper",
		"blueskyUsername":  "   ",
		"mastodonUsername": "",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"twitter":  "@grace",
		"linkedin": "grace-hopper",
	}, speaker.SocialMedia)
}

func TestSpeakerWithoutHandlesHasNilSocialMedia(t *testing.T) {
	resolver := newTestResolver(nil)

	speaker, err := resolver.Speaker(record.Record{"id": "sp-1"})

	require.NoError(t, err)
	assert.Nil(t, speaker.SocialMedia)
}

func TestRatedTalk(t *testing.T) {
	resolver := newTestResolver(nil)
	talkByID := func(talkID string) *models.Talk {
		if talkID == "talk-1" {
			return &models.Talk{ID: "talk-1", Title: "Rated"}
		}
		return nil
	}

	rated, err := resolver.RatedTalk(record.Record{
		"talkId":        "talk-1",
		"averageRating": 4.5,
		"totalRatings":  float64(120),
	}, talkByID)

	require.NoError(t, err)
	assert.Equal(t, 4.5, rated.AverageRating)
	assert.Equal(t, 120, rated.TotalRating)
	assert.Equal(t, "Rated", rated.Talk.Title)
}

func TestRatedTalkUnknownTalkSkipped(t *testing.T) {
	resolver := newTestResolver(nil)

	rated, err := resolver.RatedTalk(record.Record{
		"talkId":        "gone",
		"averageRating": 4.5,
		"totalRatings":  float64(120),
	}, func(string) *models.Talk { return nil })

	require.NoError(t, err)
	assert.Nil(t, rated)
}

func TestRatedTalkMissingTalkIDFails(t *testing.T) {
	resolver := newTestResolver(nil)

	_, err := resolver.RatedTalk(record.Record{
		"averageRating": 4.5,
	}, func(string) *models.Talk { return nil })

	assert.ErrorContains(t, err, "talkId")
}
