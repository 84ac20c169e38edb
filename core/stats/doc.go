// Package stats provides the client for the secondary statistics API.
//
// The statistics API is token-gated and entirely optional: when either the
// base URI or the token is missing from the configuration, Enabled reports
// false and every query resolves to absent. Consumers treat that as "no
// statistics available" rather than a failure, so the rest of the system
// keeps working from event feed data alone.
//
// # Endpoints
//
//   - RatingStats: GET getAllRatingStats with eventSlug/day/token query
//     parameters, returning the talkRatings document for one weekday.
//   - FavoriteCounts: POST getAllFavoriteCounts with an eventSlug body,
//     returning the global result.talkFavorites document.
package stats
