package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/dhaka-daily/internal/almanac"
	"github.com/pfrederiksen/dhaka-daily/internal/config"
	"github.com/pfrederiksen/dhaka-daily/internal/logger"
	"github.com/pfrederiksen/dhaka-daily/internal/notifier"
	"github.com/pfrederiksen/dhaka-daily/internal/telegram"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// env holds what differs between production and tests.
type env struct {
	now    func() time.Time
	apiURL string
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envFile    string
	verbose    bool
	logFormat  string
}

type sendFlags struct {
	botToken  string
	chatID    string
	parseMode string
	date      string
	dryRun    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(env{now: time.Now, apiURL: telegram.DefaultAPIURL})
}

func newRootCmd(rt env) *cobra.Command {
	var (
		global globalFlags
		cfg    *config.Config
		send   sendFlags
	)

	cmd := &cobra.Command{
		Use:   "dhaka-daily",
		Short: "Post today's Bengali, Hijri and prayer time digest to Telegram",
		Long: `A one-shot job that computes today's date in the Gregorian, Bengali and Hijri
calendars, the Bengali season, sunrise/sunset and prayer times for Dhaka, and
posts them as one Telegram message. Run it from cron or a CI schedule.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(cmd, &global)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, rt, cfg, &send)
		},
	}

	cmd.PersistentFlags().StringVar(&global.configPath, "config", os.Getenv(config.EnvConfigPath), "YAML config file (or env: "+config.EnvConfigPath+")")
	cmd.PersistentFlags().StringVar(&global.envFile, "env-file", ".env", "Load environment variables from this file if it exists")
	cmd.PersistentFlags().BoolVar(&global.verbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&global.logFormat, "log-format", "", "Log format: console or json")

	addSendFlags(cmd, &send)

	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Compute today's digest and send it to the Telegram chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, rt, cfg, &send)
		},
	}
	addSendFlags(sendCmd, &send)

	cmd.AddCommand(sendCmd, newShowCmd(rt, &cfg, &global))
	return cmd
}

func addSendFlags(cmd *cobra.Command, f *sendFlags) {
	cmd.Flags().StringVar(&f.botToken, "bot-token", "", "Telegram bot token (or env: "+config.EnvBotToken+")")
	cmd.Flags().StringVar(&f.chatID, "chat-id", "", "Telegram chat ID or @channel (or env: "+config.EnvChatID+")")
	cmd.Flags().StringVar(&f.parseMode, "parse-mode", "", "Message markup: html or markdown (default from config, html)")
	cmd.Flags().StringVar(&f.date, "date", "", "Use this date instead of today (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Print the message without sending")
}

// loadConfig applies, lowest precedence first: defaults, the YAML file, the
// .env file and the process environment. It also installs the logger.
func loadConfig(cmd *cobra.Command, global *globalFlags) (*config.Config, error) {
	envRequired := cmd.Flags().Changed("env-file")
	if err := config.LoadEnvFile(global.envFile, envRequired); err != nil {
		return nil, err
	}

	path := global.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	level := cfg.Log.Level
	if global.verbose {
		level = "debug"
	}
	format := cfg.Log.Format
	if global.logFormat != "" {
		format = global.logFormat
	}
	if err := logger.Configure(level, logger.Format(strings.ToLower(format)), cmd.ErrOrStderr()); err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded", logger.Fields{
		"config_file": path,
		"location":    cfg.Location.Name,
		"method":      cfg.Prayer.Method,
	})
	return cfg, nil
}

// resolveDay returns the moment to build the record for: noon of --date in
// the configured zone, or the current time.
func resolveDay(rt env, date string, opts almanac.Options) (time.Time, error) {
	if date == "" {
		return rt.now(), nil
	}
	day, err := almanac.ParseDate(date, opts.Location.Zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date: %w", err)
	}
	return day, nil
}

func runSend(cmd *cobra.Command, rt env, cfg *config.Config, f *sendFlags) error {
	opts, err := cfg.AlmanacOptions()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	modeText := cfg.Telegram.ParseMode
	if f.parseMode != "" {
		modeText = f.parseMode
	}
	mode, err := telegram.ParseParseMode(modeText)
	if err != nil {
		return err
	}

	day, err := resolveDay(rt, f.date, opts)
	if err != nil {
		return err
	}

	// Credentials are validated before the record is built.
	var n notifier.Notifier
	if f.dryRun {
		n = notifier.NewDryRunNotifier(cmd.OutOrStdout(), mode)
	} else {
		token := firstNonEmpty(f.botToken, cfg.Telegram.BotToken)
		chatID := firstNonEmpty(f.chatID, cfg.Telegram.ChatID)
		client, err := telegram.NewClient(token, chatID, telegram.WithAPIURL(rt.apiURL))
		if err != nil {
			return err
		}
		n = notifier.NewTelegramNotifier(client, mode)
	}

	start := time.Now()
	rec, err := almanac.Build(day, opts)
	if err != nil {
		return fmt.Errorf("building almanac: %w", err)
	}
	logger.RecordTiming("almanac.build", time.Since(start))

	logger.Debug("Almanac built", logger.Fields{
		"date":    rec.Date.Format("2006-01-02"),
		"bengali": rec.Bengali.String(),
		"hijri":   rec.Hijri.String(),
		"season":  rec.Season.String(),
	})

	msg := telegram.FormatDigest(rec, mode)
	if err := n.Notify(cmd.Context(), msg); err != nil {
		return err
	}

	logger.Debug("Run metrics", logger.MetricsSnapshot().Fields())
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error("dhaka-daily failed", nil, err)
		stop()
		os.Exit(ExitError)
	}
}
