// Package photos keeps a bounded local cache of audience-shared photos in
// sync with a paginated photo feed.
//
// # Sync Algorithm
//
// The feed serves photos newest-first in cursor-linked pages. A sync run
// snapshots the photo ids already cached, then walks pages from the top,
// downloading every photo it has not cached yet. The run stops at the first
// page containing a previously-known photo id, when the feed reports no
// further pages, or when the cache reaches its configured capacity. In
// steady state a run therefore touches only the newest page.
//
// # Scheduling
//
// The Runner triggers runs either at a fixed rate or with a fixed delay
// between runs, after an optional initial delay. Runs never overlap; the
// engine serializes them.
//
// # Content
//
// Downloaded bytes live in an in-memory store capped at the cache size,
// evicting oldest-first. When persistence is enabled, content is also
// archived to object storage keyed by photo id.
package photos
