package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

const (
	// DefaultAPIURL is the public Bot API endpoint.
	DefaultAPIURL = "https://api.telegram.org"
	timeout       = 10 * time.Second
)

var (
	ErrMissingToken  = errors.New("bot token is required")
	ErrMissingChatID = errors.New("chat ID is required")
	ErrEmptyMessage  = errors.New("message text is required")
)

// ParseMode selects how Telegram renders message text.
type ParseMode string

const (
	ModeHTML     ParseMode = "html"
	ModeMarkdown ParseMode = "markdown"
)

// ParseParseMode accepts "html" or "markdown" in any case; empty selects HTML.
func ParseParseMode(s string) (ParseMode, error) {
	switch ParseMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeHTML:
		return ModeHTML, nil
	case ModeMarkdown:
		return ModeMarkdown, nil
	default:
		return "", fmt.Errorf("unknown parse mode %q (want html or markdown)", s)
	}
}

func (m ParseMode) tele() tele.ParseMode {
	if m == ModeMarkdown {
		return tele.ModeMarkdown
	}
	return tele.ModeHTML
}

// chatRecipient lets a raw chat id or @username act as a telebot recipient.
type chatRecipient string

func (c chatRecipient) Recipient() string { return string(c) }

// Client represents a Telegram Bot API client bound to one chat.
type Client struct {
	bot    *tele.Bot
	chatID chatRecipient
}

type clientOptions struct {
	apiURL     string
	httpClient *http.Client
}

// Option customises NewClient.
type Option func(*clientOptions)

// WithAPIURL points the client at another Bot API server (used by tests).
func WithAPIURL(url string) Option {
	return func(o *clientOptions) { o.apiURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient replaces the default HTTP client, which has a 10 second timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// NewClient creates a new Telegram client. No network call is made.
func NewClient(botToken, chatID string, opts ...Option) (*Client, error) {
	botToken = strings.TrimSpace(botToken)
	chatID = strings.TrimSpace(chatID)
	if botToken == "" {
		return nil, ErrMissingToken
	}
	if chatID == "" {
		return nil, ErrMissingChatID
	}

	o := clientOptions{
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(&o)
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:   botToken,
		URL:     o.apiURL,
		Client:  o.httpClient,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating bot: %w", err)
	}

	return &Client{bot: bot, chatID: chatRecipient(chatID)}, nil
}

// ChatID returns the configured chat identifier.
func (c *Client) ChatID() string {
	return string(c.chatID)
}

// SendMessage sends text to the configured chat with a single sendMessage call.
func (c *Client) SendMessage(ctx context.Context, text string, mode ParseMode) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	_, err := c.bot.Send(c.chatID, text, &tele.SendOptions{
		ParseMode:             mode.tele(),
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("telegram API error: %w", err)
	}
	return nil
}
