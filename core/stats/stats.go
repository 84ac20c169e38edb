package stats

import (
	"context"
	"net/url"

	"conference-hub/core/feed"
	"conference-hub/core/record"
)

// Config holds configuration for the statistics API.
//
// The statistics feed is optional: leaving BaseURI or Token empty disables
// it entirely, in which case all aggregate queries resolve to absent.
type Config struct {
	// BaseURI is the base URI of the statistics API, including a trailing slash.
	BaseURI string `mapstructure:"base_uri" default:""`
	// Token is the access token required by the statistics API.
	Token string `mapstructure:"token" default:""`
	// EventSlug identifies the event in statistics queries.
	EventSlug string `mapstructure:"event_slug" default:"dvbe25"`
}

// Client queries the token-gated statistics API for audience engagement
// aggregates. All operations degrade to absent when the API is not
// configured or a request fails.
type Client struct {
	rest *feed.Client
	cfg  Config
}

// NewClient creates a statistics client on top of the shared feed client.
func NewClient(rest *feed.Client, cfg Config) *Client {
	return &Client{rest: rest, cfg: cfg}
}

// EventSlug returns the configured event slug.
func (c *Client) EventSlug() string {
	return c.cfg.EventSlug
}

// Enabled reports whether the statistics feed is configured. Both the base
// URI and the access token are required; the absence of either is a feature
// switch, not an error.
func (c *Client) Enabled() bool {
	return c.cfg.BaseURI != "" && c.cfg.Token != ""
}

// RatingStats fetches the per-talk rating list for one conference day.
func (c *Client) RatingStats(ctx context.Context, day string) (record.Record, bool) {
	if !c.Enabled() {
		return nil, false
	}

	params := url.Values{}
	params.Set("eventSlug", c.cfg.EventSlug)
	params.Set("day", day)
	params.Set("token", c.cfg.Token)

	var raw map[string]any
	if !c.rest.GetJSON(ctx, c.cfg.BaseURI+"getAllRatingStats", params, &raw) || raw == nil {
		return nil, false
	}
	return record.Record(raw), true
}

// FavoriteCounts fetches the global per-talk favorite-count list.
func (c *Client) FavoriteCounts(ctx context.Context) (record.Record, bool) {
	if !c.Enabled() {
		return nil, false
	}

	body := map[string]any{
		"data": map[string]any{
			"eventSlug": c.cfg.EventSlug,
		},
	}

	var raw map[string]any
	if !c.rest.PostJSON(ctx, c.cfg.BaseURI+"getAllFavoriteCounts", body, &raw) || raw == nil {
		return nil, false
	}
	return record.Record(raw), true
}
