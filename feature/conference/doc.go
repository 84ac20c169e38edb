// Package conference normalizes the external event and statistics feeds
// into the typed conference domain graph and exposes read operations over
// it.
//
// # Architecture
//
// Three reference maps (session types, rooms, tracks) are fetched and
// indexed once at service construction; they are read-only afterwards and
// back all cross-reference resolution. Talks, speakers and schedule slots
// are fetched and resolved fresh on every query. Two aggregates from the
// statistics API sit behind independent TTL caches: voting results (60s)
// and per-talk favorite counts (5m).
//
// # Entity Resolution
//
// The Resolver converts untyped feed records into domain entities under a
// uniform set of rules: missing optional fields resolve to zero values,
// unresolvable cross-references resolve to nil, wrong-kind fields abort the
// conversion with an error, and values available from multiple sources
// (bare id vs. embedded object, statistics counter vs. feed counter) are
// reconciled first-non-nil-wins.
//
// # Rated Talks
//
// Voting results are bucketed by weekday (monday..friday). A random
// simulation mode, selected at construction, fabricates ratings from the
// talk list for demo and offline operation instead of querying the
// statistics API.
package conference
