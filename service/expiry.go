// file: service/expiry.go

package service

import (
	"fmt"
	"time"
	"tokenwatch/model"
)

// civilDate truncates t to its calendar date. Normalizing to UTC midnight
// makes the subtraction below count whole days regardless of time of day
// or DST transitions.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysRemaining returns the number of calendar days from today until the
// expiry date. Zero means the token expires today; negative means it has
// already expired.
func DaysRemaining(expiresAt, today time.Time) int {
	return int(civilDate(expiresAt).Sub(civilDate(today)).Hours() / 24)
}

// ExpiryMessage renders the notification text for a token that is due.
func ExpiryMessage(token *model.Token, today time.Time) string {
	days := DaysRemaining(token.ExpiresAt, today)
	if days <= 0 {
		return fmt.Sprintf("🚨 Token '%s' has EXPIRED!", token.Name)
	}

	suffix := ""
	if days > 1 {
		suffix = "s"
	}
	return fmt.Sprintf("⚠️ Token '%s' will expire in %d day%s!", token.Name, days, suffix)
}
