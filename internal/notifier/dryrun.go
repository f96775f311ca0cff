package notifier

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/dhaka-daily/internal/telegram"
)

// DryRunNotifier prints what would be sent without contacting Telegram
type DryRunNotifier struct {
	out  io.Writer
	mode telegram.ParseMode
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer, mode telegram.ParseMode) *DryRunNotifier {
	return &DryRunNotifier{out: out, mode: mode}
}

// Notify prints the message as the chat would display it
func (n *DryRunNotifier) Notify(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := PlainText(msg, n.mode)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}

	fmt.Fprintf(n.out, "--- Message (%s) ---\n", n.mode)
	fmt.Fprintln(n.out, text)
	fmt.Fprintf(n.out, "\n(Length: %d characters)\n", utf8.RuneCountInString(text))
	return nil
}

// PlainText removes the markup of mode from msg.
func PlainText(msg string, mode telegram.ParseMode) (string, error) {
	if mode == telegram.ModeMarkdown {
		return stripMarkdown(msg), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(msg))
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

func stripMarkdown(msg string) string {
	var b strings.Builder
	escaped := false
	for _, r := range msg {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '*' || r == '_' || r == '`':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
