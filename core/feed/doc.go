// Package feed provides the HTTP JSON boundary to the event API.
//
// The Client wraps a net/http client with strict transport timeouts and
// exposes degrade-on-failure fetch operations: list endpoints resolve to an
// empty result and single-document endpoints resolve to absent whenever the
// request fails, returns a non-success status, or carries a malformed body.
// Failures are logged at warn level and never propagated as errors, so a
// temporarily unreachable feed leaves callers with empty data instead of a
// broken request chain.
//
// # Operations
//
//   - Records / Record: untyped documents relative to the configured base URI.
//   - GetJSON / PostJSON: typed documents from absolute URLs (statistics API,
//     photo feed).
//   - Fetch: raw byte content (photo downloads).
package feed
