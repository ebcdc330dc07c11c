package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/burndown/internal/config"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfig(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func exists(path string) bool {
	if flagConfig == "" {
		return config.Exists()
	}
	_, err := os.Stat(path)
	return err == nil
}

func runConfig(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := configPath()
	fmt.Fprintf(w, "  Config file: %s\n", path)
	if exists(path) {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [General]")
	fmt.Fprintf(w, "    Sort key:   %s\n", cfg.General.SortKey)
	fmt.Fprintf(w, "    Direction:  %s\n", cfg.General.Direction)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Chart]")
	fmt.Fprintf(w, "    Terminal:   %d x %d cells\n", cfg.Chart.Width, cfg.Chart.Height)
	fmt.Fprintf(w, "    SVG:        %d x %d px\n", cfg.Chart.SVGWidth, cfg.Chart.SVGHeight)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme:      %s\n", cfg.Appearance.Theme)
	fmt.Fprintf(w, "    Available:  %s\n", strings.Join(theme.Names(), ", "))
	if env := os.Getenv("BURNDOWN_THEME"); env != "" {
		fmt.Fprintf(w, "    Override:   %s (BURNDOWN_THEME)\n", env)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Logging]")
	fmt.Fprintf(w, "    Level:      %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Fprintf(w, "    File:       %s\n", cfg.Logging.File)
	} else {
		fmt.Fprintln(w, "    File:       not set (TUI logs are discarded)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `burndown setup` to reconfigure.")
	return nil
}
