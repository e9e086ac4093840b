package model

import "time"

// Session is a resolved login session. UserID is empty for anonymous sessions.
type Session struct {
	SID    string
	UserID string
	Expire time.Time
}
