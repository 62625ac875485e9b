package model

import "time"

// User is a registered account profile. The secret used at sign-in is never
// stored here; it lives as a bcrypt hash in the paired Credential row.
type User struct {
	ID              int64
	Identity        string // email, unique
	DisplayName     string
	JoinedAt        time.Time
	EngagementCount int64
}
