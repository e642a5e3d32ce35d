package constants

import "time"

// Cache keys and TTLs shared across controllers
const (
	CacheKeyActivePlans = "plans:active"
	PlanCacheTTL        = 5 * time.Minute
	UsageCacheTTL       = 30 * time.Second
)

// Short code length for new links
const LinkShortCodeLength = 8
