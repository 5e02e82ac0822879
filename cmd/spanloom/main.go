package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/calebwray/spanloom/internal/chart"
	"github.com/calebwray/spanloom/internal/config"
	"github.com/calebwray/spanloom/internal/export"
	"github.com/calebwray/spanloom/internal/schedule"
	"github.com/calebwray/spanloom/internal/task"
	"github.com/calebwray/spanloom/internal/taskio"
	"github.com/calebwray/spanloom/internal/ui"
	"github.com/calebwray/spanloom/internal/viewer"
)

var (
	flagConfig   string
	flagDark     bool
	flagCritical bool
	flagJSON     bool
	flagOutput   string
	flagListen   string
)

func main() {
	log.SetReportTimestamp(false)

	rootCmd := &cobra.Command{
		Use:   "spanloom",
		Short: "Schedule project tasks and draw Gantt charts",
		Long: `Spanloom loads a task set from a CSV, JSON, or YAML file, computes the
earliest-start schedule for every task from its prerequisites, and renders
the result as a Gantt chart: on the terminal, as SVG, or over a local HTTP
viewer.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: spanloom.toml)")
	rootCmd.PersistentFlags().BoolVar(&flagDark, "dark", false, "Dark color theme")

	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(chartCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("dark") {
		cfg.Chart.Dark = flagDark
	}
	return cfg, nil
}

// loadAndSchedule is shared by every command that needs a computed plan.
// Scheduling failures abort the command — nothing renders on a bad plan.
func loadAndSchedule(path string) (task.Set, *schedule.Schedule, error) {
	tasks, err := taskio.Load(path)
	if err != nil {
		return nil, nil, err
	}
	sched, err := schedule.Compute(tasks)
	if err != nil {
		return nil, nil, fmt.Errorf("schedule tasks: %w", err)
	}
	return tasks, sched, nil
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule <taskfile>",
		Short: "Compute and print start/finish days for every task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, sched, err := loadAndSchedule(args[0])
			if err != nil {
				return err
			}
			an := schedule.Analyze(tasks, sched)

			if flagJSON {
				return outputJSON(viewer.BuildGraph(tasks, sched, an))
			}

			printSchedule(tasks, sched, an)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	return cmd
}

func printSchedule(tasks task.Set, sched *schedule.Schedule, an *schedule.Analysis) {
	fmt.Printf("%-8s %-30s %8s %8s %8s %6s\n",
		ui.Bold("ID"), ui.Bold("TITLE"), ui.Bold("START"), ui.Bold("FINISH"), ui.Bold("DAYS"), ui.Bold("SLACK"))
	for _, id := range tasks.SortedIDs() {
		t := tasks[id]
		start, _ := sched.Start(id)
		finish, _ := sched.Finish(id)
		ta := an.Tasks[id]

		label := string(id)
		if ta.Critical {
			label = label + " " + ui.BoldYellow("⚡")
		}
		fmt.Printf("%-8s %-30s %8g %8g %8g %6g\n", label, t.Title, start, finish, t.Duration, ta.Slack)
	}
	fmt.Printf("\n%s %g days across %d tasks\n", ui.Bold("Total:"), sched.TotalDays(), sched.Len())
}

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <taskfile>",
		Short: "Draw the Gantt chart on the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tasks, sched, err := loadAndSchedule(args[0])
			if err != nil {
				return err
			}

			opts := chart.Options{
				WeekDays:   cfg.Chart.WeekDays,
				DayCells:   cfg.Chart.DayCells,
				TitleWidth: cfg.Chart.TitleWidth,
				Theme:      ui.Pick(cfg.Chart.Dark),
			}
			if flagCritical {
				opts.Analysis = schedule.Analyze(tasks, sched)
			}

			chart.Render(os.Stdout, tasks, sched, opts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagCritical, "critical", false, "Highlight the critical path")

	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <taskfile>",
		Short: "Export the Gantt chart as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tasks, sched, err := loadAndSchedule(args[0])
			if err != nil {
				return err
			}

			opts := svgOptions(cfg)
			if flagCritical {
				opts.Analysis = schedule.Analyze(tasks, sched)
			}

			out, err := os.Create(flagOutput)
			if err != nil {
				return fmt.Errorf("create %s: %w", flagOutput, err)
			}
			defer out.Close()

			export.SVG(out, tasks, sched, opts)
			log.Info("chart exported", "file", flagOutput)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "chart.svg", "Output SVG file")
	cmd.Flags().BoolVar(&flagCritical, "critical", false, "Highlight the critical path")

	return cmd
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <infile> <outfile>",
		Short: "Convert a task file between CSV, JSON, and YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := taskio.Load(args[0])
			if err != nil {
				return err
			}
			if err := taskio.Save(args[1], tasks); err != nil {
				return err
			}
			log.Info("converted", "from", args[0], "to", args[1], "tasks", len(tasks))
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <taskfile>",
		Short: "Serve the chart and schedule over local HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tasks, sched, err := loadAndSchedule(args[0])
			if err != nil {
				return err
			}
			an := schedule.Analyze(tasks, sched)

			addr := cfg.Viewer.Listen
			if flagListen != "" {
				addr = flagListen
			}

			srv := viewer.New(tasks, sched, an, svgOptions(cfg))
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&flagListen, "listen", "", "Listen address (default from config)")

	return cmd
}

func svgOptions(cfg config.Config) export.Options {
	return export.Options{
		Width:      cfg.Chart.Width,
		TitleWidth: 250,
		RowHeight:  cfg.Chart.RowHeight,
		BarHeight:  cfg.Chart.BarHeight,
		WeekDays:   cfg.Chart.WeekDays,
		Dark:       cfg.Chart.Dark,
	}
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
