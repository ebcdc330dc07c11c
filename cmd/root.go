// Package cmd implements the burndown CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/theirongolddev/burndown/internal/config"
	"github.com/theirongolddev/burndown/internal/logging"
	"github.com/theirongolddev/burndown/internal/model"
	"github.com/theirongolddev/burndown/internal/tui"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "burndown",
	Short: "Task burndown tracker",
	Long: "Track how a task list burns down across a date range: register projects,\n" +
		"enter per-period plan and actual values, and compare them with the ideal line.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// loadConfig reads the --config file or the default location.
func loadConfig() (config.Config, error) {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	return config.Load()
}

// configPath is where setup writes.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// openLogger builds the logger from flags over config. Logs go to a file
// when one is configured, otherwise to w.
func openLogger(cfg config.Config, w io.Writer) (*slog.Logger, io.Closer, error) {
	level := cfg.Logging.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	path := cfg.Logging.File
	if flagLogFile != "" {
		path = flagLogFile
	}
	if path == "" {
		return logging.New(w, level), io.NopCloser(nil), nil
	}
	return logging.Open(path, level)
}

// newCollection returns an empty collection in the configured order.
// Unknown values fall back to the defaults with a warning.
func newCollection(cfg config.Config, log *slog.Logger) *model.Collection {
	key, err := model.ParseSortKey(cfg.General.SortKey)
	if err != nil {
		log.Warn("invalid sort key in config, using default", "err", err)
	}
	dir, err := model.ParseDirection(cfg.General.Direction)
	if err != nil {
		log.Warn("invalid sort direction in config, using default", "err", err)
		dir = model.Descending
	}
	return model.NewCollection(key, dir)
}

func isInteractive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

func runTUI(_ *cobra.Command, _ []string) error {
	if !isInteractive() {
		return errors.New("burndown needs an interactive terminal; use `burndown chart` for scripted output")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(config.Theme(cfg))

	// The TUI owns the terminal, so logs only go to a file.
	log, closer, err := openLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	log.Info("starting tui", "config", configPath(), "theme", theme.Active.Name)
	app := tui.NewApp(newCollection(cfg, log), cfg, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
