package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/burndown/internal/cli"
	"github.com/theirongolddev/burndown/internal/config"
	"github.com/theirongolddev/burndown/internal/model"
	"github.com/theirongolddev/burndown/internal/tui/components"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/spf13/cobra"
)

type chartOptions struct {
	name    string
	total   float64
	start   string
	end     string
	actuals []string
	plans   []string
	svg     string
	width   int
	height  int
}

func init() {
	rootCmd.AddCommand(newChartCmd())
}

func newChartCmd() *cobra.Command {
	var opts chartOptions
	c := &cobra.Command{
		Use:   "chart",
		Short: "Print a burndown summary and chart for one project",
		Example: "  burndown chart --name Release --total 100 --start 2026-01-01 --end 2026-01-10 \\\n" +
			"    --actual 20,30 --plan 10,10,10\n" +
			"  burndown chart --total 100 --actual 20,30 --svg burndown.svg",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChart(cmd.OutOrStdout(), opts)
		},
	}

	today := cli.FormatDate(time.Now())
	f := c.Flags()
	f.StringVar(&opts.name, "name", "", "Project name")
	f.Float64Var(&opts.total, "total", 0, "Total tasks")
	f.StringVar(&opts.start, "start", today, "Start date (YYYY-MM-DD)")
	f.StringVar(&opts.end, "end", today, "End date (YYYY-MM-DD)")
	f.StringSliceVar(&opts.actuals, "actual", nil, "Tasks done per period, comma-separated")
	f.StringSliceVar(&opts.plans, "plan", nil, "Tasks planned per period, comma-separated")
	f.StringVar(&opts.svg, "svg", "", "Write an SVG chart to this file (\"-\" for stdout) instead of printing")
	f.IntVar(&opts.width, "width", 0, "Chart width (cells, or pixels with --svg); 0 uses config")
	f.IntVar(&opts.height, "height", 0, "Chart height (rows, or pixels with --svg); 0 uses config")
	return c
}

// buildProject turns the flags into a project. Period entries are kept as
// typed; entries that are not numbers are ignored by every computation.
func (o chartOptions) buildProject(now time.Time) (*model.Project, error) {
	start, err := cli.ParseDate(o.start)
	if err != nil {
		return nil, fmt.Errorf("--start: %w", err)
	}
	end, err := cli.ParseDate(o.end)
	if err != nil {
		return nil, fmt.Errorf("--end: %w", err)
	}
	if o.total < 0 {
		return nil, fmt.Errorf("--total must not be negative, got %v", o.total)
	}

	p := model.NewProject(now)
	p.SetName(o.name)
	p.SetTotalTask(o.total)
	p.SetDates(start, end)

	for range max(len(o.actuals), len(o.plans)) {
		p.AddPeriod()
	}
	for i, s := range o.actuals {
		if err := p.SetActual(i, s); err != nil {
			return nil, err
		}
	}
	for i, s := range o.plans {
		if err := p.SetPlan(i, s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func runChart(w io.Writer, opts chartOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(config.Theme(cfg))

	log, closer, err := openLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	p, err := opts.buildProject(time.Now())
	if err != nil {
		return err
	}
	log.Debug("chart project", "total", p.TotalTask(), "periods", p.Periods(), "days", p.Ideal().Days)

	if opts.svg != "" {
		return writeSVG(w, opts, cfg, p)
	}

	width, height := cfg.Chart.Width, cfg.Chart.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(chartTitle(p)))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(summaryTable(p)))
	if p.Periods() > 0 {
		fmt.Fprintln(w)
		fmt.Fprint(w, cli.RenderTable(periodTable(p)))
	}
	fmt.Fprintln(w)

	sw, sh := components.ChartSurface(p.TotalTask(), width, height)
	c := p.Chart(sw, sh)
	fmt.Fprintln(w, components.BurndownChart(c, [2]string{cli.FormatDate(p.StartDate()), cli.FormatDate(p.EndDate())}))
	fmt.Fprintln(w)
	return nil
}

func writeSVG(w io.Writer, opts chartOptions, cfg config.Config, p *model.Project) error {
	width, height := cfg.Chart.SVGWidth, cfg.Chart.SVGHeight
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	sw, sh := cli.SVGSurface(width, height)

	t := theme.Active
	style := cli.SVGStyle{
		Background: string(t.Background),
		Axis:       string(t.TextDim),
		Ideal:      string(t.Ideal),
		Actual:     string(t.Actual),
		Plan:       string(t.Plan),
		Text:       string(t.TextPrimary),
	}
	// The terminal theme uses ANSI indices, which SVG cannot draw.
	if !strings.HasPrefix(style.Background, "#") {
		style = cli.DefaultSVGStyle
	}

	out := w
	if opts.svg != "-" {
		f, err := os.Create(opts.svg)
		if err != nil {
			return fmt.Errorf("creating svg: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := cli.RenderSVG(out, chartTitle(p), p.Chart(sw, sh), style); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	if opts.svg != "-" {
		fmt.Fprintf(w, "  Wrote %s\n", opts.svg)
	}
	return nil
}

func chartTitle(p *model.Project) string {
	name := p.Name()
	if name == "" {
		name = "BURNDOWN"
	}
	return fmt.Sprintf("%s  %s → %s", name, cli.FormatDate(p.StartDate()), cli.FormatDate(p.EndDate()))
}

func summaryTable(p *model.Project) cli.Table {
	return cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total tasks", cli.FormatTasks(p.TotalTask())},
			{"Completed", cli.FormatTasks(p.Completed())},
			{"Remaining", cli.FormatTasks(p.RemainingTasks())},
			{"Progress", cli.RenderProgressBar(p.Progress(), 20)},
			{"---"},
			{"Duration", cli.FormatDays(p.Ideal().Days)},
			{"Periods", fmt.Sprintf("%d", p.Periods())},
		},
	}
}

// periodTable lists each period's raw entries next to the remaining work
// after the n-th counted entry of each series.
func periodTable(p *model.Project) cli.Table {
	actuals, plans := p.Actuals(), p.Plans()
	actRem, planRem := p.ActualRemaining(), p.PlanRemaining()

	at := func(s []string, i int) string {
		if i < len(s) && s[i] != "" {
			return s[i]
		}
		return "-"
	}
	rem := func(s []float64, i int) string {
		if i < len(s) {
			return cli.FormatTasks(s[i])
		}
		return "-"
	}

	tbl := cli.Table{
		Title:   "Periods",
		Headers: []string{"#", "Actual", "Plan", "Actual left", "Plan left"},
	}
	for i := range p.Periods() {
		tbl.Rows = append(tbl.Rows, []string{
			fmt.Sprintf("%d", i+1),
			at(actuals, i), at(plans, i),
			rem(actRem, i), rem(planRem, i),
		})
	}
	return tbl
}
