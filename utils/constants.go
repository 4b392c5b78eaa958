// File: utils/constants.go
package utils

import "time"

// PrefsCachePrefix is the prefix used for Redis preferred-calendar cache keys.
const PrefsCachePrefix = "prefs:"

// PrefsCacheTTL is the time-to-live for preferred-calendar cache entries.
const PrefsCacheTTL = 10 * time.Minute

// SuggestedSlotIDPrefix prefixes the synthetic IDs of suggested calendar events.
const SuggestedSlotIDPrefix = "suggested-"
