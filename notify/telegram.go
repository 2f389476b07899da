// file: notify/telegram.go

package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"tokenwatch/common"
)

// TelegramClient delivers messages through the Telegram Bot API. One client
// serves one bot token and one destination chat.
type TelegramClient struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

// DefaultAPIURL is the public Telegram Bot API endpoint.
const DefaultAPIURL = "https://api.telegram.org"

// NewTelegramClient creates a client for the given bot credentials. baseURL
// selects the API endpoint and exists so tests can point the client at a
// local server; empty means the public API.
func NewTelegramClient(botToken, chatID, baseURL string) *TelegramClient {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &TelegramClient{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendMessage performs a single form-encoded sendMessage call. There is no
// retry; the caller decides what a failed delivery means.
func (c *TelegramClient) SendMessage(ctx context.Context, text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)

	form := url.Values{}
	form.Set("chat_id", c.chatID)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return common.NewNotificationError("failed to create sendMessage request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return common.NewNotificationError("failed to reach the Telegram API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return common.NewNotificationError(fmt.Sprintf("telegram sendMessage returned status %d", resp.StatusCode), nil)
	}
	return nil
}
