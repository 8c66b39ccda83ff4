package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fortuna/depthsheets/internal/bundle"
	"github.com/fortuna/depthsheets/internal/config"
	"github.com/fortuna/depthsheets/internal/render"
	"github.com/fortuna/depthsheets/internal/service"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	seasonType string
	week       int
	year       int
	outDir     string
	zip        bool
	refresh    bool
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.seasonType, "season-type", "reg", "Season type: pre, reg or post")
	f.IntVarP(&generateFlags.week, "week", "w", 0, "Week number (required)")
	f.IntVar(&generateFlags.year, "year", 0, "Season year (defaults to SEASON_YEAR)")
	f.StringVarP(&generateFlags.outDir, "out", "o", "", "Output directory (defaults to OUT_DIR)")
	f.BoolVar(&generateFlags.zip, "zip", true, "Also write a zip of all sheets")
	f.BoolVar(&generateFlags.refresh, "refresh", false, "Ignore the cached depth chart page")
	generateCmd.MarkFlagRequired("week")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate --week <n> [--season-type reg] [--year 2025] [--out dir]",
	Short: "Scrapes one week and writes a text sheet per game.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if generateFlags.year > 0 {
			cfg.SeasonYear = generateFlags.year
		}
		if generateFlags.outDir != "" {
			cfg.OutDir = generateFlags.outDir
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		seasonType, err := store.ParseSeasonType(generateFlags.seasonType)
		if err != nil {
			return err
		}
		req := service.Request{SeasonType: seasonType, Week: generateFlags.week, SeasonYear: cfg.SeasonYear}
		if err := req.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := buildApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		if generateFlags.refresh {
			if err := a.roster.Invalidate(ctx); err != nil {
				log.Printf("⚠️  Could not clear depth chart cache: %v", err)
			}
		}

		start := time.Now()
		result, err := a.sheets.Generate(ctx, req, nil)
		if err != nil {
			return err
		}
		log.Printf("✓ Rendered %d sheets in %v", len(result.Documents), time.Since(start).Round(time.Millisecond))

		if _, err := bundle.WriteDir(cfg.OutDir, result.Documents); err != nil {
			return err
		}
		log.Printf("✓ Wrote sheets to %s", cfg.OutDir)

		if generateFlags.zip {
			archive, err := bundle.Zip(result.Documents, time.Now())
			if err != nil {
				return err
			}
			zipPath := filepath.Join(cfg.OutDir, bundle.ArchiveName(string(seasonType), req.Week))
			if err := os.WriteFile(zipPath, archive, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", zipPath, err)
			}
			log.Printf("✓ Wrote %s", zipPath)
		}

		printSummary(result, cfg.SeasonYear)
		return nil
	},
}

func printSummary(result *service.Result, seasonYear int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "File", "Kickoff", "Location", "Network"})

	for i, doc := range result.Documents {
		game := result.Games[i]
		t.AppendRow(table.Row{
			i + 1,
			doc.Name,
			render.FormatKickoff(game.DateLabel, game.TimeLocal, seasonYear),
			render.LocationLine(game.Venue, game.City),
			game.Network,
		})
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("run %s", result.Run.RunID), "", "", len(result.Documents)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
