// file: model/token.go

package model

import "time"

// DateLayout is the calendar-date form used wherever an expiry date crosses
// a boundary: CLI arguments, the database and notification messages.
const DateLayout = "2006-01-02"

// TimestampLayout is the form notification timestamps are stored and
// displayed in.
const TimestampLayout = "2006-01-02 15:04:05"

// Token holds the data for a tracked token in the database. LastNotified is
// nil until the daemon delivers a notification for it.
type Token struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	ExpiresAt    time.Time  `json:"expires_at"`
	LastNotified *time.Time `json:"last_notified,omitempty"`
}
