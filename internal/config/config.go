package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // Asia/Dhaka must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"
	yaml "go.yaml.in/yaml/v3"

	"github.com/pfrederiksen/dhaka-daily/internal/almanac"
	"github.com/pfrederiksen/dhaka-daily/internal/calendar"
	"github.com/pfrederiksen/dhaka-daily/internal/solar"
)

// Environment variable names. The TELEGRAM_* names are accepted as fallbacks.
const (
	EnvBotToken         = "BOT_TOKEN"
	EnvChatID           = "CHAT_ID"
	EnvBotTokenFallback = "TELEGRAM_BOT_TOKEN"
	EnvChatIDFallback   = "TELEGRAM_CHAT_ID"
	EnvConfigPath       = "DAILY_CONFIG"
	EnvLogLevel         = "DAILY_LOG_LEVEL"
)

// Config is the full set of run settings.
type Config struct {
	Location LocationConfig `yaml:"location"`
	Prayer   PrayerConfig   `yaml:"prayer"`
	Calendar CalendarConfig `yaml:"calendar"`
	Telegram TelegramConfig `yaml:"telegram"`
	Log      LogConfig      `yaml:"log"`
}

type LocationConfig struct {
	Name      string  `yaml:"name"`
	Label     string  `yaml:"label"` // shown in the message footer
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Timezone  string  `yaml:"timezone"`
}

type PrayerConfig struct {
	Method    string            `yaml:"method"`
	AsrSchool string            `yaml:"asr_school"`
	Adjust    solar.Adjustments `yaml:"adjust"`
}

type CalendarConfig struct {
	BengaliRevision string `yaml:"bengali_revision"`
	HijriMethod     string `yaml:"hijri_method"`
	HijriAdjustDays int    `yaml:"hijri_adjust_days"`
}

// TelegramConfig holds delivery settings. The bot token is never read from the
// YAML file so that config files can be committed.
type TelegramConfig struct {
	BotToken  string `yaml:"-"`
	ChatID    string `yaml:"chat_id"`
	ParseMode string `yaml:"parse_mode"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings for Dhaka.
func Default() *Config {
	return &Config{
		Location: LocationConfig{
			Name:      "Dhaka",
			Label:     "ঢাকা",
			Latitude:  23.8103,
			Longitude: 90.4125,
			Timezone:  "Asia/Dhaka",
		},
		Prayer: PrayerConfig{
			Method:    "karachi",
			AsrSchool: "hanafi",
		},
		Calendar: CalendarConfig{
			BengaliRevision: string(calendar.Revision1987),
			HijriMethod:     string(calendar.HijriUmmAlQura),
		},
		Telegram: TelegramConfig{
			ParseMode: "html",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is only an
// error when required is true.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv copies credentials and overrides from the environment.
func (c *Config) ApplyEnv() {
	if v := firstEnv(EnvBotToken, EnvBotTokenFallback); v != "" {
		c.Telegram.BotToken = v
	}
	if v := firstEnv(EnvChatID, EnvChatIDFallback); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

// AlmanacOptions validates the location, prayer and calendar sections and
// converts them into almanac options.
func (c *Config) AlmanacOptions() (almanac.Options, error) {
	zone, err := time.LoadLocation(c.Location.Timezone)
	if err != nil {
		return almanac.Options{}, fmt.Errorf("loading timezone %q: %w", c.Location.Timezone, err)
	}
	loc := solar.Location{
		Name:      c.Location.Name,
		Latitude:  c.Location.Latitude,
		Longitude: c.Location.Longitude,
		Zone:      zone,
	}
	if err := loc.Validate(); err != nil {
		return almanac.Options{}, fmt.Errorf("invalid location: %w", err)
	}

	method, err := solar.ParseMethod(c.Prayer.Method)
	if err != nil {
		return almanac.Options{}, err
	}
	if c.Prayer.AsrSchool != "" {
		if method.AsrFactor, err = solar.ParseAsrSchool(c.Prayer.AsrSchool); err != nil {
			return almanac.Options{}, err
		}
	}
	method.Adjust = c.Prayer.Adjust

	rev, err := calendar.ParseRevision(c.Calendar.BengaliRevision)
	if err != nil {
		return almanac.Options{}, err
	}
	hijriMethod, err := calendar.ParseHijriMethod(c.Calendar.HijriMethod)
	if err != nil {
		return almanac.Options{}, err
	}

	label := c.Location.Label
	if label == "" {
		label = c.Location.Name
	}

	return almanac.Options{
		Location: loc,
		Label:    label,
		Method:   method,
		Revision: rev,
		Hijri: calendar.HijriOptions{
			Method:     hijriMethod,
			AdjustDays: c.Calendar.HijriAdjustDays,
		},
	}, nil
}
