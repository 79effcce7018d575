// File: utils/constants.go
package utils

import "time"

// GeocodeCachePrefix is the prefix used for cached geocoding results.
const GeocodeCachePrefix = "geocode:"

// GeocodeCacheTTL is the time-to-live for cached geocoding results.
const GeocodeCacheTTL = 24 * time.Hour

// ListingLockPrefix is the prefix used for per-listing booking locks.
const ListingLockPrefix = "lock:listing:"

// ViewerTokenTTL is how long an issued viewer token stays valid.
const ViewerTokenTTL = 7 * 24 * time.Hour
