package expiring

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Value holds one computed value together with the producer that computes
// it and a time-to-live. Get returns the held value while it is fresh and
// recomputes it synchronously once it is unpopulated or older than the TTL.
//
// Invalidation is pull-based: nothing happens in the background, a stale
// value is only replaced when the next caller asks for it.
type Value[T any] struct {
	mu      sync.RWMutex
	sf      singleflight.Group
	produce func() T

	// ttl is the time-to-live after which the held value is stale.
	ttl time.Duration
	// built is the timestamp when the held value was produced.
	built time.Time

	value     T
	populated bool
}

// New creates an expiring value around the given producer.
// The producer is not invoked until the first Get.
func New[T any](produce func() T, ttl time.Duration) *Value[T] {
	return &Value[T]{produce: produce, ttl: ttl}
}

// Get returns the current value, recomputing it first if it is stale.
// Concurrent callers hitting a stale value trigger exactly one recompute;
// the others block and receive the freshly produced value (singleflight,
// as in a cache stampede guard).
func (v *Value[T]) Get() T {
	// Fast path: value exists and is fresh
	v.mu.RLock()
	if v.populated && !v.expiredLocked() {
		value := v.value
		v.mu.RUnlock()
		return value
	}
	v.mu.RUnlock()

	// Slow path: recompute under singleflight
	result, _, _ := v.sf.Do("value", func() (any, error) {
		// Double-check after acquiring the singleflight slot
		v.mu.RLock()
		if v.populated && !v.expiredLocked() {
			value := v.value
			v.mu.RUnlock()
			return value, nil
		}
		v.mu.RUnlock()

		next := v.produce()

		v.mu.Lock()
		v.value = next
		v.built = time.Now()
		v.populated = true
		v.mu.Unlock()

		return next, nil
	})

	return result.(T)
}

// Expired reports whether the next Get will trigger a recompute.
func (v *Value[T]) Expired() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return !v.populated || v.expiredLocked()
}

// Invalidate discards the held value, forcing the next Get to recompute.
func (v *Value[T]) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.populated = false
}

func (v *Value[T]) expiredLocked() bool {
	return time.Since(v.built) > v.ttl
}
