package models

// UsageSnapshot holds a tenant's resource counts at query time. It is derived
// from the resource tables and never persisted.
type UsageSnapshot struct {
	Links       int64 `json:"links"`
	Pages       int64 `json:"pages"`
	Blocks      int64 `json:"blocks"`
	Socials     int64 `json:"socials"`
	TeamMembers int64 `json:"team_members"`
}
