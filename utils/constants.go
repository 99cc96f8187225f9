// File: utils/constants.go
package utils

import "time"

// RevokedTokenPrefix is the prefix used for Redis revoked-token keys.
const RevokedTokenPrefix = "revoked:"

// AdminTokenTTL is how long an issued admin token stays valid.
const AdminTokenTTL = 24 * time.Hour

// AvailabilityCacheTTL is the time-to-live for cached slot availability listings.
const AvailabilityCacheTTL = 30 * time.Second

// StatsCacheTTL is the time-to-live for cached dashboard stats.
const StatsCacheTTL = 60 * time.Second
