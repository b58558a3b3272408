package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/penwyp/go-pomodoro/internal/config"
	"github.com/penwyp/go-pomodoro/internal/core/session"
	"github.com/penwyp/go-pomodoro/internal/data/exporter"
	"github.com/penwyp/go-pomodoro/internal/presentation/display"
	"github.com/penwyp/go-pomodoro/internal/presentation/formatter"
	"github.com/penwyp/go-pomodoro/internal/presentation/prompt"
	"github.com/penwyp/go-pomodoro/internal/presentation/sound"
	"github.com/penwyp/go-pomodoro/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug   bool
	logJSON bool

	// Configuration file
	configPath string

	// Settings that override the configuration file
	logDir       string
	language     string
	barGlyph     string
	mute         bool
	timezone     string
	exportFormat string

	rootCmd = &cobra.Command{
		Use:   "go-pomodoro [flags]",
		Short: "Terminal Pomodoro timer with a work log",
		Long: `go-pomodoro alternates 25-minute focus phases with 5-minute breaks and
records what you did in each interval.

Keys while running:
  s  start the timer
  p  pause / resume
  l  save the log now
  q  quit (the log is saved automatically)

The log is written as "log_YYYYMMDD_HHMM.csv" with the columns
"start, finish, title".

Examples:
  go-pomodoro                          # Log to the current directory
  go-pomodoro --dir ~/worklog          # Save logs elsewhere
  go-pomodoro --lang ja                # Japanese labels
  go-pomodoro --format json --mute     # JSON log, no bell`,
		Args:          cobra.NoArgs,
		RunE:          runTimer,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

const (
	defaultLogFile    = "~/.go-pomodoro/logs/app.log"
	defaultConfigFile = "~/.go-pomodoro/config.yaml"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigFile,
		"Configuration file path")

	// Output configuration
	rootCmd.Flags().StringVar(&logDir, "dir", ".",
		"Directory for exported session logs")
	rootCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv",
		"Log export format (csv, json)")
	rootCmd.Flags().StringVar(&timezone, "timezone", "Local",
		"Timezone for log timestamps (e.g., Asia/Tokyo, UTC)")

	// Display configuration
	rootCmd.Flags().StringVar(&language, "lang", "en",
		"Display language ("+strings.Join(display.Languages(), ", ")+")")
	rootCmd.Flags().StringVar(&barGlyph, "glyph", display.DefaultGlyph,
		"Glyph drawn for each remaining minute")
	rootCmd.Flags().BoolVar(&mute, "mute", false,
		"Disable the terminal bell at phase ends")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false,
		"Write the application log as JSON")
}

func runTimer(cmd *cobra.Command, args []string) error {
	// Determine log level based on debug flag
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFormat := util.FormatText
	if logJSON {
		logFormat = util.FormatJSON
	}

	// Initialize logging
	if err := util.InitLogger(logLevel, expandPath(defaultLogFile), debug, logFormat); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer util.CloseLogger()

	if err := config.LoadDotEnv(); err != nil {
		util.LogWarnf("%v", err)
	}

	loader := config.Loader{
		Path:      expandPath(configPath),
		Overrides: flagOverrides(cmd),
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return err
	}
	clock := util.GetTimeProvider()

	sessionID := uuid.NewString()
	logFormatter, ok := formatter.New(cfg.ExportFormat, clock, sessionID)
	if !ok {
		return fmt.Errorf("unsupported export format '%s'", cfg.ExportFormat)
	}
	fileExporter := exporter.NewFileExporter(expandPath(cfg.LogDir), logFormatter, clock)

	screen := display.NewTerminalDisplay(os.Stdout, display.DisplayConfig{
		Language: cfg.Language,
		BarGlyph: cfg.BarGlyph,
		Width:    display.StdoutWidth,
	})

	// The prompt needs a cooked terminal, so it runs before raw mode
	taskName := prompt.TaskName(os.Stdin, os.Stdout, screen.Labels().Prompt)
	util.LogInfof("Session %s for task %q", sessionID, taskName)

	keyboard, err := session.NewKeyboardReader()
	if err != nil {
		if errors.Is(err, session.ErrNotTerminal) {
			return fmt.Errorf("go-pomodoro must be run in an interactive terminal: %w", err)
		}
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	defer keyboard.Close()

	bell := sound.NewBell(os.Stdout, cfg.Mute)

	var reloads <-chan config.Config
	if watcher, err := config.NewWatcher(loader); err != nil {
		util.LogDebugf("Config hot reload disabled: %v", err)
	} else {
		defer watcher.Close()
		reloads = watcher.Events()
	}

	controller := session.NewController(session.ControllerConfig{
		ID:       sessionID,
		TaskName: taskName,
		Now:      clock.Now,
		Notifier: bell,
		Exporter: fileExporter,
		Reporter: screen,
	})

	manager := session.NewManager(session.ManagerConfig{
		Controller: controller,
		Input:      keyboard,
		Display:    screen,
		Bell:       bell,
		Reloads:    reloads,
	})

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	fmt.Print(util.HideCursor)
	defer fmt.Print(util.ShowCursor)

	return manager.Run(ctx)
}

// flagOverrides applies only the flags the user actually set, so the
// configuration file and environment keep their values otherwise
func flagOverrides(cmd *cobra.Command) func(*config.Config) {
	flags := cmd.Flags()
	return func(c *config.Config) {
		if flags.Changed("dir") {
			c.LogDir = logDir
		}
		if flags.Changed("format") {
			c.ExportFormat = exportFormat
		}
		if flags.Changed("timezone") {
			c.Timezone = timezone
		}
		if flags.Changed("lang") {
			c.Language = language
		}
		if flags.Changed("glyph") {
			c.BarGlyph = barGlyph
		}
		if flags.Changed("mute") {
			c.Mute = mute
		}
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
