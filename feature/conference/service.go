package conference

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"conference-hub/core/expiring"
	"conference-hub/core/feed"
	"conference-hub/core/record"
	"conference-hub/core/stats"
	"conference-hub/feature/conference/models"

	"go.uber.org/zap"
)

// conferenceDays is the fixed set of day buckets for voting results.
var conferenceDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

const (
	votingResultsTTL  = 60 * time.Second
	favoriteCountsTTL = 5 * time.Minute
)

// Service is the read facade over the event feed and the statistics API.
//
// Reference maps (session types, rooms, tracks) are built once at
// construction and held for the process lifetime; a restart picks up new
// entries. All other entities are resolved fresh on every query. The two
// statistics aggregates sit behind independent TTL caches.
type Service struct {
	feed     *feed.Client
	stats    *stats.Client
	logger   *zap.Logger
	resolver *Resolver

	sessionTypes map[string]*models.SessionType
	rooms        map[string]*models.Room
	tracks       map[string]*models.Track

	favoriteCounts *expiring.Value[map[string]int]
	votingResults  *expiring.Value[map[string][]*models.RatedTalk]

	// randomRated switches the rated-talk queries to the fabricated
	// offline path instead of the statistics API.
	randomRated bool
}

// NewService builds the reference maps from the event feed, installs the
// TTL-guarded aggregates and primes them. A feed record violating the field
// contract aborts construction.
func NewService(feedClient *feed.Client, statsClient *stats.Client, logger *zap.Logger, randomRated bool) (*Service, error) {
	s := &Service{
		feed:        feedClient,
		stats:       statsClient,
		logger:      logger,
		randomRated: randomRated,
	}

	ctx := context.Background()

	s.sessionTypes = make(map[string]*models.SessionType)
	for _, rec := range feedClient.Records(ctx, "session-types") {
		st, err := ResolveSessionType(rec)
		if err != nil {
			return nil, fmt.Errorf("building session type map: %w", err)
		}
		s.sessionTypes[st.ID] = st
	}
	logger.Info("Loaded session types", zap.Strings("ids", mapKeys(s.sessionTypes)))

	s.rooms = make(map[string]*models.Room)
	for _, rec := range feedClient.Records(ctx, "rooms") {
		room, err := ResolveRoom(rec)
		if err != nil {
			return nil, fmt.Errorf("building room map: %w", err)
		}
		s.rooms[room.ID] = room
	}
	logger.Info("Loaded rooms", zap.Strings("ids", mapKeys(s.rooms)))

	s.tracks = make(map[string]*models.Track)
	for _, rec := range feedClient.Records(ctx, "tracks") {
		track, err := ResolveTrack(rec)
		if err != nil {
			return nil, fmt.Errorf("building track map: %w", err)
		}
		s.tracks[track.ID] = track
	}
	logger.Info("Loaded tracks", zap.Strings("ids", mapKeys(s.tracks)))

	s.favoriteCounts = expiring.New(s.loadFavoriteCounts, favoriteCountsTTL)
	s.votingResults = expiring.New(s.loadVotingResults, votingResultsTTL)

	s.resolver = NewResolver(s.sessionTypes, s.rooms, s.tracks, func(talkID string) *int {
		if count, ok := s.favoriteCounts.Get()[talkID]; ok {
			return &count
		}
		return nil
	})

	// Prime both aggregates so the first caller doesn't pay for them
	s.favoriteCounts.Get()
	s.votingResults.Get()

	return s, nil
}

// Name returns the identifier of the event this service is configured for.
func (s *Service) Name() string {
	return s.stats.EventSlug()
}

// SessionTypes returns all known session types, ordered by id.
func (s *Service) SessionTypes() []*models.SessionType {
	out := make([]*models.SessionType, 0, len(s.sessionTypes))
	for _, st := range s.sessionTypes {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Rooms returns all known rooms, ordered by id.
func (s *Service) Rooms() []*models.Room {
	out := make([]*models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Tracks returns all known tracks, ordered by id.
func (s *Service) Tracks() []*models.Track {
	out := make([]*models.Track, 0, len(s.tracks))
	for _, track := range s.tracks {
		out = append(out, track)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Schedule returns the schedule slots for one conference day.
func (s *Service) Schedule(ctx context.Context, day string) ([]*models.ScheduleSlot, error) {
	return s.convertSlots(s.feed.Records(ctx, "schedules/"+day))
}

// ScheduleForRoom returns the schedule slots for one conference day in one
// room.
func (s *Service) ScheduleForRoom(ctx context.Context, day, room string) ([]*models.ScheduleSlot, error) {
	return s.convertSlots(s.feed.Records(ctx, "schedules/"+day+"/"+room))
}

func (s *Service) convertSlots(records []record.Record) ([]*models.ScheduleSlot, error) {
	slots := make([]*models.ScheduleSlot, 0, len(records))
	for _, rec := range records {
		slot, err := s.resolver.ScheduleSlot(rec)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// Speakers returns all speakers.
func (s *Service) Speakers(ctx context.Context) ([]*models.Speaker, error) {
	records := s.feed.Records(ctx, "speakers")
	speakers := make([]*models.Speaker, 0, len(records))
	for _, rec := range records {
		speaker, err := s.resolver.Speaker(rec)
		if err != nil {
			return nil, err
		}
		speakers = append(speakers, speaker)
	}
	return speakers, nil
}

// Speaker returns one speaker by id, or nil when unknown.
func (s *Service) Speaker(ctx context.Context, speakerID string) (*models.Speaker, error) {
	rec, ok := s.feed.Record(ctx, "speakers/"+speakerID)
	if !ok {
		return nil, nil
	}
	return s.resolver.Speaker(rec)
}

// Talks returns all talks.
func (s *Service) Talks(ctx context.Context) ([]*models.Talk, error) {
	records := s.feed.Records(ctx, "talks")
	talks := make([]*models.Talk, 0, len(records))
	for _, rec := range records {
		talk, err := s.resolver.Talk(rec)
		if err != nil {
			return nil, err
		}
		talks = append(talks, talk)
	}
	return talks, nil
}

// Talk returns one talk by id, or nil when unknown.
func (s *Service) Talk(ctx context.Context, talkID string) (*models.Talk, error) {
	rec, ok := s.feed.Record(ctx, "talks/"+talkID)
	if !ok {
		return nil, nil
	}
	return s.resolver.Talk(rec)
}

// RatingEnabled reports whether rated-talk queries have a data source.
func (s *Service) RatingEnabled() bool {
	return s.randomRated || s.stats.Enabled()
}

// RatedTalks returns the voting results for one conference day. Days
// outside the monday..friday set, or days without an aggregate entry,
// yield an empty result.
func (s *Service) RatedTalks(ctx context.Context, conferenceDay string) []*models.RatedTalk {
	if s.randomRated {
		return s.randomizedRatedTalks(ctx)
	}

	results := s.votingResults.Get()
	rated, ok := results[conferenceDay]
	if !ok {
		s.logger.Warn("No voting results for conference day",
			zap.String("day", conferenceDay),
			zap.Strings("known", mapKeys(results)))
		return []*models.RatedTalk{}
	}
	return rated
}

// RatedTalksOverall returns the voting results across all conference days.
func (s *Service) RatedTalksOverall(ctx context.Context) []*models.RatedTalk {
	if s.randomRated {
		return s.randomizedRatedTalks(ctx)
	}

	var out []*models.RatedTalk
	for _, day := range conferenceDays {
		out = append(out, s.votingResults.Get()[day]...)
	}
	return out
}

// randomizedRatedTalks fabricates voting results from the talk list for
// demo and offline operation: a coin-flip decides inclusion, ratings are
// uniform in [0,5) and rating counts uniform in [0,200). Intentionally
// not reproducible.
func (s *Service) randomizedRatedTalks(ctx context.Context) []*models.RatedTalk {
	s.logger.Debug("Fabricating randomized rated talks")

	var out []*models.RatedTalk
	for _, rec := range s.feed.Records(ctx, "talks") {
		if rand.IntN(2) == 0 {
			continue
		}
		talk, err := s.resolver.Talk(rec)
		if err != nil {
			s.logger.Error("Skipping malformed talk record", zap.Error(err))
			continue
		}
		out = append(out, &models.RatedTalk{
			AverageRating: rand.Float64() * 5,
			TotalRating:   rand.IntN(200),
			Talk:          talk,
		})
	}
	return out
}

// loadVotingResults queries the statistics API once per conference day.
// An unconfigured statistics feed resolves to an empty mapping.
func (s *Service) loadVotingResults() map[string][]*models.RatedTalk {
	if !s.stats.Enabled() {
		return map[string][]*models.RatedTalk{}
	}

	s.logger.Info("Loading voting results")
	ctx := context.Background()

	out := make(map[string][]*models.RatedTalk, len(conferenceDays))
	for _, day := range conferenceDays {
		doc, ok := s.stats.RatingStats(ctx, day)
		if !ok {
			out[day] = []*models.RatedTalk{}
			continue
		}
		out[day] = s.convertVotingResults(ctx, day, doc)
	}
	return out
}

func (s *Service) convertVotingResults(ctx context.Context, day string, doc record.Record) []*models.RatedTalk {
	ratings, err := record.List(doc, "talkRatings")
	if err != nil {
		s.logger.Error("Malformed voting results document", zap.String("day", day), zap.Error(err))
		return []*models.RatedTalk{}
	}

	talkByID := func(talkID string) *models.Talk {
		talk, err := s.Talk(ctx, talkID)
		if err != nil {
			s.logger.Error("Resolving rated talk failed", zap.String("talkId", talkID), zap.Error(err))
			return nil
		}
		return talk
	}

	out := make([]*models.RatedTalk, 0, len(ratings))
	for _, rec := range ratings {
		rated, err := s.resolver.RatedTalk(rec, talkByID)
		if err != nil {
			s.logger.Error("Skipping malformed rating record", zap.String("day", day), zap.Error(err))
			continue
		}
		if rated == nil {
			// Referenced talk unknown on the event feed
			continue
		}
		out = append(out, rated)
	}
	return out
}

// loadFavoriteCounts queries the global per-talk favorite counters.
// An unconfigured statistics feed resolves to an empty mapping.
func (s *Service) loadFavoriteCounts() map[string]int {
	counts := make(map[string]int)
	if !s.stats.Enabled() {
		return counts
	}

	s.logger.Info("Loading talk favorite counts")

	doc, ok := s.stats.FavoriteCounts(context.Background())
	if !ok {
		return counts
	}

	result, err := record.Child(doc, "result")
	if err != nil || result == nil {
		s.logger.Error("Malformed favorite counts document", zap.Error(err))
		return counts
	}
	favorites, err := record.List(result, "talkFavorites")
	if err != nil {
		s.logger.Error("Malformed favorite counts document", zap.Error(err))
		return counts
	}

	for _, rec := range favorites {
		talkID, err := record.ID(rec, "talkId")
		if err != nil || talkID == nil {
			s.logger.Error("Skipping favorite count entry without talkId", zap.Error(err))
			continue
		}
		count, err := record.Int(rec, "favoriteCount")
		if err != nil || count == nil {
			s.logger.Error("Skipping favorite count entry without count", zap.String("talkId", *talkID), zap.Error(err))
			continue
		}
		counts[*talkID] = *count
	}

	s.logger.Debug("Updated talk favorite counts", zap.Int("talks", len(counts)))
	return counts
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
