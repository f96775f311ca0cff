package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/dhaka-daily/internal/logger"
	"github.com/pfrederiksen/dhaka-daily/internal/telegram"
)

// Notifier defines the interface for delivering the daily message
type Notifier interface {
	// Notify delivers one rendered message
	Notify(ctx context.Context, msg string) error
}

// MessageSender is the part of telegram.Client that TelegramNotifier uses.
type MessageSender interface {
	SendMessage(ctx context.Context, text string, mode telegram.ParseMode) error
}

// TelegramNotifier posts messages to a Telegram chat.
type TelegramNotifier struct {
	sender MessageSender
	mode   telegram.ParseMode
}

// NewTelegramNotifier creates a notifier that sends with the given parse mode
func NewTelegramNotifier(sender MessageSender, mode telegram.ParseMode) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, mode: mode}
}

// Notify sends msg once. Failures are returned, never retried.
func (n *TelegramNotifier) Notify(ctx context.Context, msg string) error {
	start := time.Now()
	err := n.sender.SendMessage(ctx, msg, n.mode)
	logger.RecordTiming("telegram.send", time.Since(start))

	if err != nil {
		logger.IncrCounter("telegram.send_failed")
		return fmt.Errorf("sending telegram message: %w", err)
	}

	logger.IncrCounter("telegram.sent")
	logger.Info("Daily message sent", logger.Fields{
		"parse_mode": string(n.mode),
		"length":     len(msg),
	})
	return nil
}
