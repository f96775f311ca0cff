package almanac

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pfrederiksen/dhaka-daily/internal/calendar"
	"github.com/pfrederiksen/dhaka-daily/internal/solar"
)

func dhakaOptions(t *testing.T) Options {
	t.Helper()
	zone, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		t.Fatalf("loading Asia/Dhaka: %v", err)
	}
	return Options{
		Location: solar.Location{Name: "Dhaka", Latitude: 23.8103, Longitude: 90.4125, Zone: zone},
		Label:    "ঢাকা",
		Method:   solar.Karachi,
		Revision: calendar.Revision1987,
		Hijri:    calendar.HijriOptions{Method: calendar.HijriUmmAlQura},
	}
}

func TestBuild(t *testing.T) {
	opts := dhakaOptions(t)

	tests := []struct {
		name        string
		now         time.Time
		wantDate    string
		wantWeekday time.Weekday
		wantBengali calendar.BengaliDate
		wantSeason  calendar.Season
	}{
		{
			name:        "Pohela Boishakh 1431",
			now:         time.Date(2024, time.April, 14, 3, 0, 0, 0, opts.Location.Zone),
			wantDate:    "2024-04-14",
			wantWeekday: time.Sunday,
			wantBengali: calendar.BengaliDate{Day: 1, Month: calendar.Boishakh, Year: 1431},
			wantSeason:  calendar.Grishma,
		},
		{
			name:        "Last day of Chaitra",
			now:         time.Date(2024, time.April, 13, 12, 0, 0, 0, opts.Location.Zone),
			wantDate:    "2024-04-13",
			wantWeekday: time.Saturday,
			wantBengali: calendar.BengaliDate{Day: 30, Month: calendar.Chaitra, Year: 1430},
			wantSeason:  calendar.Basanta,
		},
		{
			// 20:00 UTC on the 13th is already 02:00 on the 14th in Dhaka.
			name:        "UTC evening resolves to next Dhaka day",
			now:         time.Date(2024, time.April, 13, 20, 0, 0, 0, time.UTC),
			wantDate:    "2024-04-14",
			wantWeekday: time.Sunday,
			wantBengali: calendar.BengaliDate{Day: 1, Month: calendar.Boishakh, Year: 1431},
			wantSeason:  calendar.Grishma,
		},
		{
			name:        "Winter",
			now:         time.Date(2024, time.January, 14, 9, 0, 0, 0, opts.Location.Zone),
			wantDate:    "2024-01-14",
			wantWeekday: time.Sunday,
			wantBengali: calendar.BengaliDate{Day: 1, Month: calendar.Magh, Year: 1430},
			wantSeason:  calendar.Sheet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Build(tt.now, opts)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := rec.Date.Format("2006-01-02"); got != tt.wantDate {
				t.Errorf("Date = %s, want %s", got, tt.wantDate)
			}
			if rec.Date.Location() != opts.Location.Zone {
				t.Errorf("Date location = %v, want %v", rec.Date.Location(), opts.Location.Zone)
			}
			if rec.Weekday != tt.wantWeekday {
				t.Errorf("Weekday = %v, want %v", rec.Weekday, tt.wantWeekday)
			}
			if diff := cmp.Diff(tt.wantBengali, rec.Bengali); diff != "" {
				t.Errorf("Bengali mismatch (-want +got):\n%s", diff)
			}
			if rec.Season != tt.wantSeason {
				t.Errorf("Season = %v, want %v", rec.Season, tt.wantSeason)
			}
			if rec.Place != "ঢাকা" {
				t.Errorf("Place = %q, want ঢাকা", rec.Place)
			}
			if got := rec.Times.Sunrise.Format("2006-01-02"); got != tt.wantDate {
				t.Errorf("Sunrise on %s, want %s", got, tt.wantDate)
			}
		})
	}
}

func TestBuildHijri(t *testing.T) {
	opts := dhakaOptions(t)

	rec, err := Build(time.Date(2024, time.July, 7, 10, 0, 0, 0, opts.Location.Zone), opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := calendar.HijriDate{Day: 1, Month: calendar.Muharram, Year: 1446}
	if diff := cmp.Diff(want, rec.Hijri); diff != "" {
		t.Errorf("Hijri mismatch (-want +got):\n%s", diff)
	}

	opts.Hijri.AdjustDays = -1
	rec, err = Build(time.Date(2024, time.July, 8, 10, 0, 0, 0, opts.Location.Zone), opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if diff := cmp.Diff(want, rec.Hijri); diff != "" {
		t.Errorf("adjusted Hijri mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlaceFallsBackToName(t *testing.T) {
	opts := dhakaOptions(t)
	opts.Label = ""

	rec, err := Build(time.Date(2024, time.April, 14, 9, 0, 0, 0, opts.Location.Zone), opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if rec.Place != "Dhaka" {
		t.Errorf("Place = %q, want Dhaka", rec.Place)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Options)
		now     time.Time
		wantErr string
	}{
		{
			name:    "Missing zone",
			modify:  func(o *Options) { o.Location.Zone = nil },
			now:     time.Date(2024, time.April, 14, 0, 0, 0, 0, time.UTC),
			wantErr: "invalid location",
		},
		{
			name: "Polar night",
			modify: func(o *Options) {
				o.Location = solar.Location{Name: "Longyearbyen", Latitude: 78.22, Longitude: 15.65, Zone: time.UTC}
			},
			now:     time.Date(2024, time.December, 21, 12, 0, 0, 0, time.UTC),
			wantErr: "computing prayer times",
		},
		{
			name:    "Before the Hijri epoch",
			modify:  func(o *Options) { o.Hijri.Method = calendar.HijriArithmetic },
			now:     time.Date(600, time.January, 1, 12, 0, 0, 0, time.UTC),
			wantErr: "computing hijri date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := dhakaOptions(t)
			tt.modify(&opts)
			_, err := Build(tt.now, opts)
			if err == nil {
				t.Fatal("Build() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Build() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestRecordJSON(t *testing.T) {
	opts := dhakaOptions(t)
	rec, err := Build(time.Date(2024, time.April, 14, 9, 0, 0, 0, opts.Location.Zone), opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	for _, key := range []string{"date", "place", "bengali", "hijri", "season", "times"} {
		if _, ok := got[key]; !ok {
			t.Errorf("JSON missing key %q: %s", key, data)
		}
	}
	if got["season"] != "Grishma" {
		t.Errorf("season = %v, want Grishma", got["season"])
	}
}
