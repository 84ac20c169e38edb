package feed

// Config holds configuration for the event feed endpoint.
type Config struct {
	// BaseURI is the base URI of the event API, including a trailing slash
	// (e.g. "https://dvbe25.cfp.dev/api/public/").
	BaseURI string `mapstructure:"base_uri" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
