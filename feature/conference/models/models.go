package models

import "time"

// SessionType classifies talks (conference, deep dive, BOF, break, ...).
type SessionType struct {
	// ID is the external identifier, normalized to its textual form.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Description is the long-form description.
	Description string `json:"description,omitempty"`
	// Color is the CSS color associated with the session type.
	Color string `json:"color,omitempty"`
	// Duration is the nominal slot duration.
	Duration time.Duration `json:"duration"`
	// Pause marks non-talk slots such as coffee breaks.
	Pause bool `json:"pause"`
}

// Room is a physical conference room.
type Room struct {
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Capacity is the number of seats.
	Capacity int `json:"capacity"`
	// Weight orders rooms for display purposes.
	Weight float64 `json:"weight"`
}

// Track is a thematic grouping of talks.
type Track struct {
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Description is the long-form description.
	Description string `json:"description,omitempty"`
	// AvatarURL points to the track's image.
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Speaker is a person giving one or more talks.
type Speaker struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// FullName is the trimmed first and last name joined by a space.
	FullName string `json:"fullName"`
	Company  string `json:"company,omitempty"`
	// AvatarURL points to the speaker's portrait.
	AvatarURL string `json:"avatarUrl,omitempty"`
	// SocialMedia maps platform name (twitter, linkedin, bluesky, mastodon)
	// to the speaker's handle. Blank handles are never stored.
	SocialMedia map[string]string `json:"socialMedia,omitempty"`
	// Talks lists the talks this speaker is involved in.
	Talks []*Talk `json:"talks,omitempty"`
}

// Talk is a single conference session.
type Talk struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// AudienceLevel indicates the targeted experience level.
	AudienceLevel string `json:"audienceLevel,omitempty"`
	// Language is the language the talk is held in.
	Language string `json:"language"`
	// FavoriteCount is the number of favorites, preferring the statistics
	// feed over the event feed's own counter.
	FavoriteCount int `json:"favoriteCount"`
	// SessionType is nil when the referenced id is unknown.
	SessionType *SessionType `json:"sessionType,omitempty"`
	// Track is nil when the referenced id is unknown.
	Track *Track `json:"track,omitempty"`
	// ScheduleSlots lists when and where the talk takes place.
	ScheduleSlots []*ScheduleSlot `json:"scheduleSlots,omitempty"`
	// Speakers lists the people giving the talk.
	Speakers []*Speaker `json:"speakers,omitempty"`
	// Tags are free-form topic labels.
	Tags []string `json:"tags,omitempty"`
}

// ScheduleSlot places a talk in a room at a time.
type ScheduleSlot struct {
	ID string `json:"id"`
	// Overflow marks slots in overflow rooms streaming another room's talk.
	Overflow bool `json:"overflow"`
	// Start and End bound the slot; End is never before Start in the feed.
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// FavoriteCount is the feed's favorite counter for this slot.
	FavoriteCount int `json:"favoriteCount"`
	// Room is nil when the referenced id is unknown.
	Room *Room `json:"room,omitempty"`
	// Talk is the scheduled talk, when embedded in the feed record.
	Talk *Talk `json:"talk,omitempty"`
}

// RatedTalk wraps a talk together with its audience voting aggregate.
type RatedTalk struct {
	// AverageRating is the mean audience rating.
	AverageRating float64 `json:"averageRating"`
	// TotalRating is the number of ratings cast.
	TotalRating int `json:"totalRating"`
	// Talk is the rated talk.
	Talk *Talk `json:"talk"`
}
