package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/derekprior/doubles/internal/config"
	"github.com/derekprior/doubles/internal/excel"
	"github.com/derekprior/doubles/internal/report"
	"github.com/derekprior/doubles/internal/schedule"
	"github.com/derekprior/doubles/internal/validator"
	"github.com/derekprior/doubles/internal/web"
)

const defaultConfigFile = "config.yaml"

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory or pass --config", defaultConfigFile)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "doubles",
		Short: "Badminton doubles round-robin schedule generator",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter config.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and validate schedules",
	}

	var configFile string
	scheduleCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: config.yaml in current directory)")

	var outputFile string
	var seed int64
	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a schedule from a config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			return runGenerate(newLogger(verbose), configPath, outputFile, seed)
		},
	}
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "schedule.xlsx", "Output file path (.xlsx for a workbook, anything else for a text report)")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for a reproducible schedule (default: current time)")

	validateCmd := &cobra.Command{
		Use:          "validate <schedule.xlsx>",
		Short:        "Validate a schedule against config rules",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runValidate(configPath, args[0])
		},
	}

	var addr string
	serveCmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the schedule generator over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(newLogger(verbose), addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")

	scheduleCmd.AddCommand(generateCmd, validateCmd)
	rootCmd.AddCommand(initCmd, scheduleCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("✓ Created %s\n", outputPath)
	return nil
}

const configTemplate = `# Badminton Doubles Configuration
# ===============================
# This file defines the players and courts for a doubles round robin.
# Teams are drawn at random each time a schedule is generated.

# Players by gender. Mixed pairs are formed first, then same-gender pairs
# from whoever is left. An odd player out sits the session out.
players:
  male: [Alan, Ben, Chen, Dev, Eli]
  female: [Fay, Gia, Hana, Ivy, Jo]

# Fixed groups always play together and are removed from the random draw.
# A group with a single name is paired with the odd player out, if any.
fixed_groups:
  - [Alan, Fay]

# Number of courts in play each round (1-10). Every session has 10 rounds.
courts: 2

# Strategy determines how each round is filled.
# "balanced" steers every team towards its fair share of matches and avoids
# rematches. "simple" plays the least-played teams first.
strategy: balanced
`

func runGenerate(logger zerolog.Logger, configPath, outputPath string, seed int64) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Debug().Int64("seed", seed).Str("config", configPath).Msg("generating")

	t, err := schedule.Generate(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	for _, r := range t.Rounds {
		logger.Debug().Int("round", r.Number).Int("matches", len(r.Matches)).Msg("round scheduled")
	}

	sum := t.Summary()
	fmt.Printf("Scheduling %d teams on %d court(s) over %d rounds...\n", len(t.Teams), t.Courts, schedule.Rounds)
	if sum.Scheduled == sum.TotalMatches {
		fmt.Printf("✓ All %d matches scheduled\n", sum.Scheduled)
	} else {
		fmt.Fprintf(os.Stderr, "⚠ %d of %d matches scheduled\n", sum.Scheduled, sum.TotalMatches)
	}

	fmt.Println("\nPer Team Metrics:")
	fmt.Printf("  %-30s %6s %6s %5s\n", "Team", "Played", "Target", "Diff")
	var off []schedule.TeamStat
	for _, s := range t.TeamStats() {
		fmt.Printf("  %-30s %6d %6d %+5d\n", s.Team, s.Played, s.Target, s.Difference)
		if s.Status == schedule.NeedsAdjustment {
			off = append(off, s)
		}
	}

	if len(off) > 0 {
		fmt.Printf("\nTeams needing adjustment (%d):\n", len(off))
		for _, s := range off {
			fmt.Printf("  ⚠ %s\n", report.StatLine(s))
		}
	} else {
		fmt.Println("\n✓ Every team within one match of its target")
	}

	if err := writeOutput(t, outputPath); err != nil {
		return err
	}
	fmt.Printf("\n✓ Schedule saved to %s\n", outputPath)
	return nil
}

func writeOutput(t *schedule.Tournament, outputPath string) error {
	if strings.EqualFold(filepath.Ext(outputPath), ".xlsx") {
		f, err := excel.Generate(t)
		if err != nil {
			return fmt.Errorf("generating Excel: %w", err)
		}
		if err := f.SaveAs(outputPath); err != nil {
			return fmt.Errorf("saving file: %w", err)
		}
		return nil
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.Write(out, t); err != nil {
		out.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return out.Close()
}

func runValidate(configPath, schedulePath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	violations, err := validator.Validate(cfg, schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		switch v.Type {
		case "error":
			errors++
			fmt.Printf("✗ Rule violation: %s\n", v.Message)
		case "warning":
			warnings++
			fmt.Printf("⚠ Guideline violation: %s\n", v.Message)
		}
	}

	fmt.Printf("\nValidation complete: %d rule violations, %d guideline violations\n", errors, warnings)

	if errors > 0 {
		return fmt.Errorf("%d constraint violations found", errors)
	}
	return nil
}

func runServe(logger zerolog.Logger, addr string) error {
	templates, err := web.NewTemplates()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	server := web.NewServer(web.NewMemoryStore(), templates, logger)

	logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, server.Routes())
}
