package telegram

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/pfrederiksen/dhaka-daily/internal/almanac"
	"github.com/pfrederiksen/dhaka-daily/internal/calendar"
	"github.com/pfrederiksen/dhaka-daily/internal/solar"
)

// style wraps text in the markup of one parse mode. Every wrapper escapes its
// argument, so callers pass plain text.
type style struct {
	escape func(string) string
	bold   func(string) string
	code   func(string) string
	italic func(string) string
}

func styleFor(mode ParseMode) style {
	if mode == ModeMarkdown {
		// Telegram does not unescape inside code spans, so backticks are swapped out.
		return style{
			escape: escapeMarkdown,
			bold:   func(s string) string { return "*" + escapeMarkdown(s) + "*" },
			code:   func(s string) string { return "`" + strings.ReplaceAll(s, "`", "'") + "`" },
			italic: func(s string) string { return "_" + escapeMarkdown(s) + "_" },
		}
	}
	return style{
		escape: escapeHTML,
		bold:   func(s string) string { return "<b>" + escapeHTML(s) + "</b>" },
		code:   func(s string) string { return "<code>" + escapeHTML(s) + "</code>" },
		italic: func(s string) string { return "<i>" + escapeHTML(s) + "</i>" },
	}
}

func escapeHTML(s string) string {
	return html.EscapeString(s)
}

// markdownEscaper covers the entity characters of Telegram's legacy Markdown mode.
var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

type prayerLine struct {
	marker string
	name   string
	window solar.Window
}

func prayerLines(rec *almanac.Record) []prayerLine {
	return []prayerLine{
		{"⬛", "ফজর", rec.Times.Fajr},
		{"🟨", "যোহর", rec.Times.Dhuhr},
		{"🟫", "আসর", rec.Times.Asr},
		{"🔲", "মাগরিব", rec.Times.Maghrib},
		{"⬜", "ইশা", rec.Times.Isha},
	}
}

func formatWindow(w solar.Window) string {
	return calendar.ClockTime(w.Start) + " - " + calendar.ClockTime(w.End)
}

// genitive appends the Bengali possessive suffix: "ঢাকা" becomes "ঢাকার",
// "চট্টগ্রাম" becomes "চট্টগ্রামের". Names not written in Bengali get "-এর".
func genitive(place string) string {
	place = strings.TrimSpace(place)
	last, _ := utf8.DecodeLastRuneInString(place)
	switch {
	case place == "":
		return ""
	case last < 0x0980 || last > 0x09FF:
		return place + "-এর"
	case last >= 0x09BE && last <= 0x09CC, last == 'অ', last == 'আ', last == 'ই', last == 'উ', last == 'এ', last == 'ও':
		return place + "র"
	default:
		return place + "ের"
	}
}
