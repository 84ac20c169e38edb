package photos

import (
	"fmt"
	"time"
)

// Schedule types for the sync job.
const (
	// ScheduleFixedRate starts runs at a fixed interval, regardless of how
	// long each run takes.
	ScheduleFixedRate = "fixed_rate"
	// ScheduleFixedDelay waits the interval between the end of one run and
	// the start of the next.
	ScheduleFixedDelay = "fixed_delay"
)

// Config holds configuration for the shared-photo sync job.
type Config struct {
	// QueryURL is the URL where the shared photos can be queried.
	// An empty URL disables the photo feature.
	QueryURL string `mapstructure:"query_url" default:""`
	// PageSize is the number of photos requested per feed page.
	PageSize int `mapstructure:"page_size" default:"10"`
	// CacheSize is the maximum number of photos held in the local cache.
	CacheSize int `mapstructure:"cache_size" default:"100"`
	// ScheduleType selects fixed_rate or fixed_delay scheduling.
	ScheduleType string `mapstructure:"schedule_type" default:"fixed_rate"`
	// InitialDelaySeconds is the delay until the first run.
	InitialDelaySeconds int64 `mapstructure:"initial_delay_seconds" default:"0"`
	// IntervalSeconds is the rate of / delay between consecutive runs.
	IntervalSeconds int64 `mapstructure:"interval_seconds" default:"1800"`
	// Persist enables archiving downloaded photo content to object storage.
	Persist bool `mapstructure:"persist" default:"false"`
}

// Validate rejects invalid settings at construction time, before any sync
// run can observe them.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("photos: page_size must be larger than zero, got %d", c.PageSize)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("photos: cache_size must be larger than zero, got %d", c.CacheSize)
	}
	switch c.ScheduleType {
	case ScheduleFixedRate, ScheduleFixedDelay:
	default:
		return fmt.Errorf("photos: unknown schedule_type %q", c.ScheduleType)
	}
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("photos: interval_seconds must be larger than zero, got %d", c.IntervalSeconds)
	}
	return nil
}

// InitialDelay returns the delay until the first run.
func (c Config) InitialDelay() time.Duration {
	return time.Duration(c.InitialDelaySeconds) * time.Second
}

// Interval returns the schedule interval.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}
