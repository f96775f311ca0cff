package telegram

import (
	"strings"

	"github.com/pfrederiksen/dhaka-daily/internal/almanac"
	"github.com/pfrederiksen/dhaka-daily/internal/calendar"
)

const rule = "──────────────────"

// FormatDigest renders the daily message for rec in the given parse mode.
// All numerals are written with Bengali digits.
func FormatDigest(rec *almanac.Record, mode ParseMode) string {
	s := styleFor(mode)
	var msg strings.Builder

	// Header
	msg.WriteString("🌙 " + s.bold("নিত্যদিনের আপডেট") + " 🌙\n")
	msg.WriteString(rule + "\n\n")
	msg.WriteString("👋 " + s.bold("আসসালামু আলাইকুম ওয়ারাহমাতুল্লাহ্") + "\n\n")

	// Dates
	msg.WriteString("🗓 " + s.bold("আজকের তারিখ:") + "\n")
	msg.WriteString("▫️ ইংরেজি: " + s.code(calendar.GregorianDate(rec.Date)) + " খ্রিষ্টাব্দ\n")
	msg.WriteString("▫️ বাংলা: " + s.code(rec.Bengali.Bengali()) + " বঙ্গাব্দ\n")
	msg.WriteString("▫️ হিজরি: " + s.code(rec.Hijri.Bengali()) + " হিজরি\n\n")

	// Day and season
	msg.WriteString("🌤 " + s.bold("প্রকৃতি ও সময়:") + "\n")
	msg.WriteString("▫️ আজকের বার: " + s.bold(calendar.WeekdayName(rec.Weekday)) + "\n")
	msg.WriteString("▫️ ঋতু: " + rec.Season.Emoji() + " " + rec.Season.Bengali() + "\n\n")

	// Sun
	msg.WriteString("🌞 " + s.bold("সূর্যের সময়সূচি ("+rec.Place+"):") + "\n")
	msg.WriteString("⬆️ সূর্যোদয়: " + s.code(calendar.ClockTime(rec.Times.Sunrise)) + "\n")
	msg.WriteString("⬇️ সূর্যাস্ত: " + s.code(calendar.ClockTime(rec.Times.Sunset)) + "\n\n")

	// Prayers
	msg.WriteString("🕌 " + s.bold("নামাজের সময়সূচি:") + "\n")
	for _, p := range prayerLines(rec) {
		msg.WriteString(p.marker + " " + p.name + ": " + s.code(formatWindow(p.window)) + "\n")
	}
	msg.WriteString("\n")

	// Footer
	msg.WriteString("✨ " + s.italic("আপনার দিনটি বরকতময় হোক!") + "\n")
	msg.WriteString(rule + "\n")
	msg.WriteString("বি.দ্র: " + s.escape(genitive(rec.Place)) + " টাইম অনুযায়ী।")

	return msg.String()
}
