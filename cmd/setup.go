package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/burndown/internal/config"
	"github.com/theirongolddev/burndown/internal/model"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the wizard answers as form-friendly strings.
type setupValues struct {
	sortKey     string
	direction   string
	theme       string
	chartWidth  string
	chartHeight string
	logLevel    string
}

func setupValuesOf(cfg config.Config) *setupValues {
	return &setupValues{
		sortKey:     cfg.General.SortKey,
		direction:   cfg.General.Direction,
		theme:       cfg.Appearance.Theme,
		chartWidth:  strconv.Itoa(cfg.Chart.Width),
		chartHeight: strconv.Itoa(cfg.Chart.Height),
		logLevel:    cfg.Logging.Level,
	}
}

// apply copies the answers into cfg.
func (v *setupValues) apply(cfg *config.Config) error {
	if _, err := model.ParseSortKey(v.sortKey); err != nil {
		return err
	}
	if _, err := model.ParseDirection(v.direction); err != nil {
		return err
	}
	width, err := strconv.Atoi(v.chartWidth)
	if err != nil {
		return fmt.Errorf("chart width: %w", err)
	}
	height, err := strconv.Atoi(v.chartHeight)
	if err != nil {
		return fmt.Errorf("chart height: %w", err)
	}

	cfg.General.SortKey = v.sortKey
	cfg.General.Direction = v.direction
	cfg.Appearance.Theme = v.theme
	cfg.Chart.Width = width
	cfg.Chart.Height = height
	cfg.Logging.Level = v.logLevel
	return nil
}

func minInt(lo int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < lo {
			return fmt.Errorf("enter a whole number of at least %d", lo)
		}
		return nil
	}
}

func newSetupForm(v *setupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to burndown").
				Description("Choose how projects are listed and how charts are drawn.\nSettings are saved to "+configPath()),
			huh.NewSelect[string]().
				Title("Sort projects by").
				Options(
					huh.NewOption("Progress", model.SortByProgress.String()),
					huh.NewOption("Remaining tasks", model.SortByRemaining.String()),
				).
				Value(&v.sortKey),
			huh.NewSelect[string]().
				Title("Direction").
				Options(
					huh.NewOption("Descending", model.Descending.String()),
					huh.NewOption("Ascending", model.Ascending.String()),
				).
				Value(&v.direction),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.theme),
			huh.NewInput().
				Title("Chart width (cells)").
				Value(&v.chartWidth).
				Validate(minInt(10)),
			huh.NewInput().
				Title("Chart height (rows)").
				Value(&v.chartHeight).
				Validate(minInt(4)),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&v.logLevel),
		),
	)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return errors.New("setup needs an interactive terminal; edit " + configPath() + " instead")
	}

	cfg, _ := loadConfig()
	vals := setupValuesOf(cfg)

	if err := newSetupForm(vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := vals.apply(&cfg); err != nil {
		return err
	}
	if err := config.SaveFile(configPath(), cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", configPath())
	fmt.Fprintln(out, "  Run `burndown setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
