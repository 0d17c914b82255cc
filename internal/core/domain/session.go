package domain

import "time"

// Session maps an opaque bearer token to the account that logged in.
// The token is the primary key; validity is derived from CreatedAt and
// the configured TTL rather than stored.
type Session struct {
	Token     string    `json:"token" bson:"token"`
	UserID    string    `json:"userId" bson:"user_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// Expired reports whether the session is older than ttl at instant now.
func (s Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}
