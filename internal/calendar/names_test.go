package calendar

import (
	"testing"
	"time"
)

func TestClockTime(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{5, 42, "০৫:৪২ সকাল"},
		{0, 30, "১২:৩০ রাত"},
		{12, 5, "১২:০৫ দুপুর"},
		{15, 21, "০৩:২১ দুপুর"},
		{17, 48, "০৫:৪৮ বিকাল"},
		{19, 18, "০৭:১৮ বিকাল"},
		{21, 0, "০৯:০০ রাত"},
	}

	for _, tt := range tests {
		in := time.Date(2024, time.April, 14, tt.hour, tt.min, 0, 0, time.UTC)
		if got := ClockTime(in); got != tt.want {
			t.Errorf("ClockTime(%02d:%02d) = %q, want %q", tt.hour, tt.min, got, tt.want)
		}
	}
}

func TestGregorianDate(t *testing.T) {
	got := GregorianDate(time.Date(2024, time.April, 14, 0, 0, 0, 0, time.UTC))
	if want := "১৪ এপ্রিল ২০২৪"; got != want {
		t.Errorf("GregorianDate() = %q, want %q", got, want)
	}
}

func TestWeekdayName(t *testing.T) {
	if got, want := WeekdayName(time.Friday), "শুক্রবার"; got != want {
		t.Errorf("WeekdayName(Friday) = %q, want %q", got, want)
	}
	if got, want := WeekdayName(time.Sunday), "রবিবার"; got != want {
		t.Errorf("WeekdayName(Sunday) = %q, want %q", got, want)
	}
}

func TestGregorianMonthName_OutOfRange(t *testing.T) {
	if got := GregorianMonthName(13); got != "" {
		t.Errorf("GregorianMonthName(13) = %q, want empty", got)
	}
}
