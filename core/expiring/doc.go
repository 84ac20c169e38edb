// Package expiring provides a single-value TTL cache with stampede
// protection.
//
// A Value wraps a zero-argument producer and a time-to-live. The first Get
// invokes the producer synchronously; subsequent Gets return the held value
// until the TTL elapses, after which the next Get recomputes it. Concurrent
// recomputes are collapsed into one via singleflight, so an expiring value
// never triggers a thundering herd against its producer.
//
// # Usage
//
//	counts := expiring.New(loadFavoriteCounts, 5*time.Minute)
//	m := counts.Get() // recomputes only when stale
package expiring
