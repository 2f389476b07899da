// notify/telegram_test.go
package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"tokenwatch/common"

	"github.com/stretchr/testify/assert"
)

func TestTelegramClient_SendMessage(t *testing.T) {
	ctx := context.Background()

	// --- Test Case 1: The request carries the right path and form fields ---
	t.Run("success", func(t *testing.T) {
		var (
			gotPath        string
			gotContentType string
			gotChatID      string
			gotText        string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			assert.NoError(t, r.ParseForm())
			gotChatID = r.PostFormValue("chat_id")
			gotText = r.PostFormValue("text")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewTelegramClient("12345:secret", "chat-42", server.URL)

		err := client.SendMessage(ctx, "⚠️ Token 'api-key' will expire in 1 day!")
		assert.NoError(t, err)
		assert.Equal(t, "/bot12345:secret/sendMessage", gotPath)
		assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
		assert.Equal(t, "chat-42", gotChatID)
		assert.Equal(t, "⚠️ Token 'api-key' will expire in 1 day!", gotText)
	})

	// --- Test Case 2: A non-2xx response is a notification error ---
	t.Run("api rejects the message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"ok":false,"error_code":401}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewTelegramClient("bad-token", "chat-42", server.URL)

		err := client.SendMessage(ctx, "hello")
		assert.Error(t, err)
		assert.True(t, common.IsKind(err, common.KindNotification))
	})

	// --- Test Case 3: An unreachable endpoint is a notification error ---
	t.Run("endpoint unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // shut down before use

		client := NewTelegramClient("12345:secret", "chat-42", server.URL)

		err := client.SendMessage(ctx, "hello")
		assert.Error(t, err)
		assert.True(t, common.IsKind(err, common.KindNotification))
	})

	// --- Test Case 4: A cancelled context aborts the call ---
	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		client := NewTelegramClient("12345:secret", "chat-42", server.URL)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := client.SendMessage(cancelled, "hello")
		assert.Error(t, err)
	})
}

func TestNewTelegramClient_TrimsTrailingSlash(t *testing.T) {
	client := NewTelegramClient("12345:secret", "chat-42", "https://api.telegram.org/")
	assert.Equal(t, "https://api.telegram.org", client.baseURL)
}
