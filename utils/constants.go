package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// TimelineCachePrefix is the prefix for cached resolved timelines.
// Keys are "timeline:<providerID>:<date>".
const TimelineCachePrefix = "timeline:"

// DateLayout is the calendar-date format used everywhere a date crosses a
// boundary (requests, cache keys, Mongo documents).
const DateLayout = "2006-01-02"

// MinutesPerDay bounds every minute-of-day interval.
const MinutesPerDay = 1440
