package model

import "time"

// User is a shopping identity bound 1:1 to an opaque session token. There
// is no authentication; the token itself is the identity.
type User struct {
	ID        int64     `json:"id" db:"id"`
	SessionID string    `json:"sessionId" db:"session_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
