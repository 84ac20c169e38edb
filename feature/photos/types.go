package photos

import "time"

// SharedPhoto is one photo entry from the shared-photo feed.
type SharedPhoto struct {
	// ID is the feed-assigned photo identifier.
	ID string `json:"id"`
	// URL is where the photo content is hosted.
	URL string `json:"url"`
	// CreatedAt is when the photo was shared.
	CreatedAt time.Time `json:"createdAt"`
	// Likes is the number of likes the photo has received.
	Likes int64 `json:"likes"`
	// FlaggedAsSpam marks photos reported by the audience.
	FlaggedAsSpam bool `json:"flaggedAsSpam"`
}

// PageInfo drives pagination of the shared-photo feed. The zero value
// (no cursor, no more pages) is what an absent page decodes to.
type PageInfo struct {
	// PageSize is the page size the feed applied.
	PageSize int64 `json:"pageSize"`
	// LastVisible is the opaque cursor for the next page.
	LastVisible string `json:"lastVisible"`
	// HasMore reports whether further pages exist.
	HasMore bool `json:"hasMore"`
}

// SharedPhotos is one page of the shared-photo feed.
type SharedPhotos struct {
	Photos   []SharedPhoto `json:"photos"`
	PageInfo PageInfo      `json:"pageInfo"`
}
