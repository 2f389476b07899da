// service/expiry_test.go
package service

import (
	"testing"
	"time"
	"tokenwatch/model"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDaysRemaining(t *testing.T) {
	testCases := []struct {
		name      string
		expiresAt time.Time
		today     time.Time
		expected  int
	}{
		{"expires today", date(2024, 6, 10), date(2024, 6, 10), 0},
		{"expires tomorrow", date(2024, 6, 11), date(2024, 6, 10), 1},
		{"expires in a week", date(2024, 6, 17), date(2024, 6, 10), 7},
		{"expired yesterday", date(2024, 6, 9), date(2024, 6, 10), -1},
		{"expired long ago", date(2024, 1, 1), date(2024, 6, 10), -161},
		{"across a month boundary", date(2024, 7, 2), date(2024, 6, 30), 2},
		{"across a leap day", date(2024, 3, 1), date(2024, 2, 28), 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DaysRemaining(tc.expiresAt, tc.today))
		})
	}

	t.Run("ignores time of day", func(t *testing.T) {
		// 23:59 today vs midnight tomorrow is still one whole day.
		today := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
		expires := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, DaysRemaining(expires, today))
	})

	t.Run("ignores the location of the clock reading", func(t *testing.T) {
		zone := time.FixedZone("UTC+11", 11*60*60)
		today := time.Date(2024, 6, 10, 1, 0, 0, 0, zone)
		assert.Equal(t, 1, DaysRemaining(date(2024, 6, 11), today))
	})
}

func TestExpiryMessage(t *testing.T) {
	today := date(2024, 6, 10)

	t.Run("expired token", func(t *testing.T) {
		token := &model.Token{Name: "prod-db-password", ExpiresAt: date(2024, 6, 1)}
		assert.Equal(t, "🚨 Token 'prod-db-password' has EXPIRED!", ExpiryMessage(token, today))
	})

	t.Run("token expiring today counts as expired", func(t *testing.T) {
		token := &model.Token{Name: "prod-db-password", ExpiresAt: today}
		assert.Equal(t, "🚨 Token 'prod-db-password' has EXPIRED!", ExpiryMessage(token, today))
	})

	t.Run("one day left is singular", func(t *testing.T) {
		token := &model.Token{Name: "api-key", ExpiresAt: date(2024, 6, 11)}
		assert.Equal(t, "⚠️ Token 'api-key' will expire in 1 day!", ExpiryMessage(token, today))
	})

	t.Run("several days left is plural", func(t *testing.T) {
		token := &model.Token{Name: "api-key", ExpiresAt: date(2024, 6, 13)}
		assert.Equal(t, "⚠️ Token 'api-key' will expire in 3 days!", ExpiryMessage(token, today))
	})
}
