package conference

import (
	"fmt"
	"strings"
	"time"

	"conference-hub/core/record"
	"conference-hub/feature/conference/models"
)

// socialFields maps the recognized feed field names to social media
// platform names. Handles outside this set are ignored.
var socialFields = map[string]string{
	"twitterHandle":    "twitter",
	"linkedInUsername": "linkedin",
	"blueskyUsername":  "bluesky",
	"mastodonUsername": "mastodon",
}

// Resolver converts untyped feed records into typed domain entities,
// resolving cross-references against the reference maps built at startup.
// Conversion is recursive: a Talk embeds resolved ScheduleSlots and
// Speakers, a ScheduleSlot embeds a resolved Talk. The feed is trusted to
// be acyclic.
//
// Missing optional fields resolve to their zero value; references to
// unknown ids resolve to nil. A field present with the wrong JSON kind
// aborts the conversion with an error.
type Resolver struct {
	sessionTypes map[string]*models.SessionType
	rooms        map[string]*models.Room
	tracks       map[string]*models.Track

	// favoriteCount returns the statistics-derived favorite count for a
	// talk id, or nil when the statistics aggregate has no entry. May be
	// nil when no statistics source is attached.
	favoriteCount func(talkID string) *int
}

// NewResolver creates a resolver over the given reference maps.
func NewResolver(
	sessionTypes map[string]*models.SessionType,
	rooms map[string]*models.Room,
	tracks map[string]*models.Track,
	favoriteCount func(talkID string) *int,
) *Resolver {
	return &Resolver{
		sessionTypes:  sessionTypes,
		rooms:         rooms,
		tracks:        tracks,
		favoriteCount: favoriteCount,
	}
}

// ResolveSessionType converts one session-type record.
func ResolveSessionType(rec record.Record) (*models.SessionType, error) {
	id, err := record.ID(rec, "id")
	if err != nil {
		return nil, fmt.Errorf("session type: %w", err)
	}
	name, err := record.String(rec, "name")
	if err != nil {
		return nil, fmt.Errorf("session type: %w", err)
	}
	description, err := record.String(rec, "description")
	if err != nil {
		return nil, fmt.Errorf("session type: %w", err)
	}
	color, err := record.String(rec, "cssColor")
	if err != nil {
		return nil, fmt.Errorf("session type: %w", err)
	}
	minutes, err := record.Int(rec, "duration")
	if err != nil {
		return nil, fmt.Errorf("session type: %w", err)
	}
	pause, err := record.Bool(rec, "pause")
	if err != nil {
		return nil, fmt.Errorf("session type: %w", err)
	}

	return &models.SessionType{
		ID:          strVal(id),
		Name:        strVal(name),
		Description: strVal(description),
		Color:       strVal(color),
		Duration:    time.Duration(intVal(minutes)) * time.Minute,
		Pause:       boolVal(pause),
	}, nil
}

// ResolveRoom converts one room record.
func ResolveRoom(rec record.Record) (*models.Room, error) {
	id, err := record.ID(rec, "id")
	if err != nil {
		return nil, fmt.Errorf("room: %w", err)
	}
	name, err := record.String(rec, "name")
	if err != nil {
		return nil, fmt.Errorf("room: %w", err)
	}
	capacity, err := record.Int(rec, "capacity")
	if err != nil {
		return nil, fmt.Errorf("room: %w", err)
	}
	weight, err := record.Float(rec, "weight")
	if err != nil {
		return nil, fmt.Errorf("room: %w", err)
	}

	return &models.Room{
		ID:       strVal(id),
		Name:     strVal(name),
		Capacity: intVal(capacity),
		Weight:   floatVal(weight),
	}, nil
}

// ResolveTrack converts one track record.
func ResolveTrack(rec record.Record) (*models.Track, error) {
	id, err := record.ID(rec, "id")
	if err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}
	name, err := record.String(rec, "name")
	if err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}
	description, err := record.String(rec, "description")
	if err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}
	avatarURL, err := record.String(rec, "imageURL")
	if err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}

	return &models.Track{
		ID:          strVal(id),
		Name:        strVal(name),
		Description: strVal(description),
		AvatarURL:   strVal(avatarURL),
	}, nil
}

// Talk converts one talk record, resolving session-type and track
// references and reconciling the favorite count across both feeds.
func (r *Resolver) Talk(rec record.Record) (*models.Talk, error) {
	id, err := record.ID(rec, "id")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}
	title, err := record.String(rec, "title")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}
	audienceLevel, err := record.String(rec, "audienceLevel")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}

	sessionTypeID, err := r.referencedID(rec, "sessionTypeId", "sessionType")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}
	trackID, err := r.referencedID(rec, "trackId", "track")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}

	// Favorite count alternation: the externally audited statistics value
	// wins over the feed's own counter.
	var statsCount *int
	if id != nil && r.favoriteCount != nil {
		statsCount = r.favoriteCount(*id)
	}
	feedCount, err := record.Int(rec, "totalFavourites")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}

	slotRecords, err := record.List(rec, "timeSlots")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}
	var slots []*models.ScheduleSlot
	for _, sr := range slotRecords {
		slot, err := r.ScheduleSlot(sr)
		if err != nil {
			return nil, fmt.Errorf("talk %s: %w", strVal(id), err)
		}
		slots = append(slots, slot)
	}

	speakerRecords, err := record.List(rec, "speakers")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}
	var speakers []*models.Speaker
	for _, sr := range speakerRecords {
		speaker, err := r.Speaker(sr)
		if err != nil {
			return nil, fmt.Errorf("talk %s: %w", strVal(id), err)
		}
		speakers = append(speakers, speaker)
	}

	tagRecords, err := record.List(rec, "tags")
	if err != nil {
		return nil, fmt.Errorf("talk: %w", err)
	}
	var tags []string
	for _, tr := range tagRecords {
		name, err := record.String(tr, "name")
		if err != nil {
			return nil, fmt.Errorf("talk %s: %w", strVal(id), err)
		}
		if name != nil {
			tags = append(tags, *name)
		}
	}

	talk := &models.Talk{
		ID:            strVal(id),
		Title:         strVal(title),
		AudienceLevel: strVal(audienceLevel),
		Language:      "en",
		FavoriteCount: intVal(record.Alternatives(statsCount, feedCount)),
		ScheduleSlots: slots,
		Speakers:      speakers,
		Tags:          tags,
	}
	if sessionTypeID != nil {
		talk.SessionType = r.sessionTypes[*sessionTypeID]
	}
	if trackID != nil {
		talk.Track = r.tracks[*trackID]
	}
	return talk, nil
}

// ScheduleSlot converts one schedule-slot record, resolving the room
// reference and the embedded proposal talk.
func (r *Resolver) ScheduleSlot(rec record.Record) (*models.ScheduleSlot, error) {
	id, err := record.ID(rec, "id")
	if err != nil {
		return nil, fmt.Errorf("schedule slot: %w", err)
	}
	overflow, err := record.Bool(rec, "overflow")
	if err != nil {
		return nil, fmt.Errorf("schedule slot: %w", err)
	}
	start, err := record.Instant(rec, "fromDate")
	if err != nil {
		return nil, fmt.Errorf("schedule slot: %w", err)
	}
	end, err := record.Instant(rec, "toDate")
	if err != nil {
		return nil, fmt.Errorf("schedule slot: %w", err)
	}
	favorites, err := record.Int(rec, "totalFavourites")
	if err != nil {
		return nil, fmt.Errorf("schedule slot: %w", err)
	}
	roomID, err := r.referencedID(rec, "roomId", "room")
	if err != nil {
		return nil, fmt.Errorf("schedule slot: %w", err)
	}

	slot := &models.ScheduleSlot{
		ID:            strVal(id),
		Overflow:      boolVal(overflow),
		Start:         timeVal(start),
		End:           timeVal(end),
		FavoriteCount: intVal(favorites),
	}
	if roomID != nil {
		slot.Room = r.rooms[*roomID]
	}

	proposal, err := record.Child(rec, "proposal")
	if err != nil {
		return nil, fmt.Errorf("schedule slot: %w", err)
	}
	if proposal != nil {
		talk, err := r.Talk(proposal)
		if err != nil {
			return nil, fmt.Errorf("schedule slot %s: %w", strVal(id), err)
		}
		slot.Talk = talk
	}
	return slot, nil
}

// Speaker converts one speaker record, including the fixed set of social
// media handles and the speaker's embedded talks.
func (r *Resolver) Speaker(rec record.Record) (*models.Speaker, error) {
	id, err := record.ID(rec, "id")
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	first, err := record.TrimmedString(rec, "firstName")
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	last, err := record.TrimmedString(rec, "lastName")
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	company, err := record.TrimmedString(rec, "company")
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	avatarURL, err := record.String(rec, "imageUrl")
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}

	talkRecords, err := record.List(rec, "talks")
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	var talks []*models.Talk
	for _, tr := range talkRecords {
		talk, err := r.Talk(tr)
		if err != nil {
			return nil, fmt.Errorf("speaker %s: %w", strVal(id), err)
		}
		talks = append(talks, talk)
	}

	var social map[string]string
	for field, platform := range socialFields {
		handle, err := record.TrimmedString(rec, field)
		if err != nil {
			return nil, fmt.Errorf("speaker: %w", err)
		}
		// Blank handles are dropped, not stored as empty strings
		if handle == nil || *handle == "" {
			continue
		}
		if social == nil {
			social = make(map[string]string)
		}
		social[platform] = *handle
	}

	return &models.Speaker{
		ID:          strVal(id),
		FirstName:   strVal(first),
		LastName:    strVal(last),
		FullName:    strings.TrimSpace(strVal(first) + " " + strVal(last)),
		Company:     strVal(company),
		AvatarURL:   strVal(avatarURL),
		SocialMedia: social,
		Talks:       talks,
	}, nil
}

// RatedTalk converts one per-talk rating record from the statistics feed.
// The referenced talk is resolved through talkByID (the full talk-fetch
// path, not the reference maps); a talk that cannot be resolved yields a
// nil rated talk without an error.
func (r *Resolver) RatedTalk(rec record.Record, talkByID func(string) *models.Talk) (*models.RatedTalk, error) {
	average, err := record.Float(rec, "averageRating")
	if err != nil {
		return nil, fmt.Errorf("rated talk: %w", err)
	}
	total, err := record.Int(rec, "totalRatings")
	if err != nil {
		return nil, fmt.Errorf("rated talk: %w", err)
	}
	talkID, err := record.ID(rec, "talkId")
	if err != nil {
		return nil, fmt.Errorf("rated talk: %w", err)
	}
	if talkID == nil {
		return nil, fmt.Errorf("rated talk: missing talkId in %v", rec)
	}

	talk := talkByID(*talkID)
	if talk == nil {
		return nil, nil
	}

	return &models.RatedTalk{
		AverageRating: floatVal(average),
		TotalRating:   intVal(total),
		Talk:          talk,
	}, nil
}

// referencedID resolves a cross-reference that appears either as a bare id
// field or as an embedded object carrying an id; the first non-nil form
// wins.
func (r *Resolver) referencedID(rec record.Record, idField, objectField string) (*string, error) {
	direct, err := record.ID(rec, idField)
	if err != nil {
		return nil, err
	}
	embedded, err := record.Child(rec, objectField)
	if err != nil {
		return nil, err
	}
	var embeddedID *string
	if embedded != nil {
		embeddedID, err = record.ID(embedded, "id")
		if err != nil {
			return nil, err
		}
	}
	return record.Alternatives(direct, embeddedID), nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intVal(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func floatVal(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func boolVal(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func timeVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
