package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptlens/promptlens/calculations"
	"github.com/promptlens/promptlens/logging"
	"github.com/promptlens/promptlens/output"
)

var (
	analyzeView   string
	analyzePeriod string
	analyzeLimit  int
	analyzeOutput string
	analyzeFile   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute analytics views offline",
	Long: `Load the configured record files and print the aggregated views
without starting the HTTP server. Useful for one-off reports and piping
JSON into other tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.InitLogger(cfg.App.LogLevel, cfg.App.LogFile)

		if !cmd.Flags().Changed("limit") {
			analyzeLimit = cfg.Analyze.UserLimit
		}

		ds, _, err := loadDataset(cfg)
		if err != nil {
			return err
		}

		engine := calculations.NewEngine(ds)
		sections, err := collectViews(engine, analyzeView)
		if err != nil {
			return err
		}

		formatter := output.NewConsoleFormatter()
		switch analyzeOutput {
		case "json":
			return writeAnalyzeJSON(formatter, sections)
		case "table":
			return writeAnalyzeTable(formatter, sections)
		default:
			return fmt.Errorf("unknown output format: %s", analyzeOutput)
		}
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeView, "view", "all", "view to compute (all, overview, users, temporal, models, categories, quality)")
	analyzeCmd.Flags().StringVar(&analyzePeriod, "period", calculations.PeriodDaily, "temporal grouping (hourly, daily, weekly)")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "number of users in the per-user rollup")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "table", "output format (table, json)")
	analyzeCmd.Flags().StringVar(&analyzeFile, "out", "", "write output to a file instead of stdout")
	analyzeCmd.Flags().StringSliceVarP(&servePaths, "paths", "p", nil, "record files or directories to load")

	rootCmd.AddCommand(analyzeCmd)
}

type viewSection struct {
	key   string
	title string
	view  any
}

func collectViews(engine *calculations.Engine, view string) ([]viewSection, error) {
	var sections []viewSection
	add := func(key, title string, v any) {
		sections = append(sections, viewSection{key: key, title: title, view: v})
	}

	want := func(name string) bool { return view == "all" || view == name }

	if want("overview") {
		add("overview", "Overview", engine.Overview())
	}
	if want("users") {
		add("users", "Users", engine.Users(analyzeLimit))
	}
	if want("temporal") {
		t, err := engine.Temporal(analyzePeriod)
		if err != nil {
			return nil, err
		}
		add("temporal", fmt.Sprintf("Temporal (%s)", analyzePeriod), t)
	}
	if want("models") {
		add("models", "Models", engine.Models())
	}
	if want("categories") {
		add("categories", "Categories", engine.Categories())
	}
	if want("quality") {
		add("quality", "Quality", engine.Quality())
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("unknown view: %s", view)
	}
	return sections, nil
}

func writeAnalyzeTable(formatter *output.ConsoleFormatter, sections []viewSection) error {
	var buf strings.Builder
	for _, s := range sections {
		buf.WriteString(formatter.Section(s.title, s.view))
		buf.WriteString("\n")
	}

	if analyzeFile != "" {
		return os.WriteFile(analyzeFile, []byte(buf.String()), 0o644)
	}
	fmt.Print(buf.String())
	return nil
}

func writeAnalyzeJSON(formatter *output.ConsoleFormatter, sections []viewSection) error {
	var payload any
	if len(sections) == 1 {
		payload = sections[0].view
	} else {
		m := make(map[string]any, len(sections))
		for _, s := range sections {
			m[s.key] = s.view
		}
		payload = m
	}

	text, err := formatter.JSON(payload)
	if err != nil {
		return err
	}

	if analyzeFile != "" {
		return os.WriteFile(analyzeFile, []byte(text+"\n"), 0o644)
	}
	fmt.Println(text)
	return nil
}
