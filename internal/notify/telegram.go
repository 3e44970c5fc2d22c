package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wakatime-tracker/internal/config"
	"wakatime-tracker/internal/logging"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramNotifier sends status messages to a Telegram chat via the Bot API.
type TelegramNotifier struct {
	cfg     config.TelegramConfig
	baseURL string
	http    *http.Client
}

// NewTelegramNotifier creates a notifier for the configured bot and chat.
func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		cfg:     cfg,
		baseURL: defaultTelegramAPI,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewTelegramNotifierWithBaseURL creates a notifier against a custom API
// endpoint. Used by tests.
func NewTelegramNotifierWithBaseURL(cfg config.TelegramConfig, baseURL string) *TelegramNotifier {
	n := NewTelegramNotifier(cfg)
	n.baseURL = baseURL
	return n
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// sendMessage delivers one message. Delivery failures are logged, never
// returned as errors: a broken sink must not fail a collection.
func (n *TelegramNotifier) sendMessage(ctx context.Context, message string) bool {
	if !n.cfg.IsConfigured() {
		logging.Debugln("telegram notifier not configured, dropping message")
		return false
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    n.cfg.ChatID,
		Text:      message,
		ParseMode: "HTML",
	})
	if err != nil {
		logging.Errorf("failed to encode telegram message: %v", err)
		return false
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logging.Errorf("failed to build telegram request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		logging.Errorf("failed to send telegram message: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Errorf("telegram API returned status %d", resp.StatusCode)
		return false
	}

	logging.Debugln("telegram message sent successfully")
	return true
}

// SendSuccess reports a completed action with optional details
func (n *TelegramNotifier) SendSuccess(ctx context.Context, action, details string) bool {
	message := fmt.Sprintf("✅ <b>WakaTime Success</b>\n\n%s", action)
	if details != "" {
		message += fmt.Sprintf("\n\n%s", details)
	}
	return n.sendMessage(ctx, message)
}

// SendError reports a failure with optional context
func (n *TelegramNotifier) SendError(ctx context.Context, message, errContext string) bool {
	text := fmt.Sprintf("🚨 <b>WakaTime Error</b>\n\n%s", message)
	if errContext != "" {
		text += fmt.Sprintf("\n\nContext: %s", errContext)
	}
	return n.sendMessage(ctx, text)
}
