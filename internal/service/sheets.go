package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/depthsheets/internal/batch"
	"github.com/fortuna/depthsheets/internal/depth"
	"github.com/fortuna/depthsheets/internal/ingest"
	"github.com/fortuna/depthsheets/internal/ingest/fox"
	"github.com/fortuna/depthsheets/internal/ingest/ourlads"
	"github.com/fortuna/depthsheets/internal/render"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/fortuna/depthsheets/internal/teams"
	"github.com/google/uuid"
)

// ScheduleFetcher returns the raw schedule page for one week
type ScheduleFetcher interface {
	fox.Fetcher
	BaseURL() string
}

// DepthChartFetcher returns the raw depth chart page
type DepthChartFetcher interface {
	FetchDepthCharts(ctx context.Context) (string, error)
}

// RunRecorder persists run summaries
type RunRecorder interface {
	Create(ctx context.Context, run *store.Run) (*store.Run, error)
	GetByID(ctx context.Context, runID string) (*store.Run, error)
	Recent(ctx context.Context, limit int) ([]*store.Run, error)
}

// RunPublisher announces finished runs
type RunPublisher interface {
	PublishRun(ctx context.Context, run *store.Run) error
}

// Request selects the week to generate
type Request struct {
	SeasonType store.SeasonType
	Week       int
	SeasonYear int
}

// Validate checks the request before any page is fetched
func (r Request) Validate() error {
	if r.Week <= 0 {
		return fmt.Errorf("week must be positive, got %d", r.Week)
	}
	if r.SeasonYear <= 0 {
		return fmt.Errorf("season year must be positive, got %d", r.SeasonYear)
	}
	if _, err := store.ParseSeasonType(string(r.SeasonType)); err != nil {
		return err
	}
	return nil
}

// Result is one finished batch
type Result struct {
	Run       *store.Run
	Games     []store.GameRecord
	Documents []batch.Document
}

// SheetService ties the scrapers, the batch generator and the run history together
type SheetService struct {
	schedule ScheduleFetcher
	depth    DepthChartFetcher
	layout   render.Layout

	runs      RunRecorder
	publisher RunPublisher

	now func() time.Time
}

// NewSheetService creates the service. runs and publisher may be nil.
func NewSheetService(schedule ScheduleFetcher, depth DepthChartFetcher, layout render.Layout, runs RunRecorder, publisher RunPublisher) *SheetService {
	return &SheetService{
		schedule:  schedule,
		depth:     depth,
		layout:    layout,
		runs:      runs,
		publisher: publisher,
		now:       time.Now,
	}
}

// Schedule fetches and parses one week of games
func (s *SheetService) Schedule(ctx context.Context, seasonType store.SeasonType, week int) ([]store.GameRecord, error) {
	page, err := s.schedule.FetchSchedule(ctx, seasonType, week)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}

	doc, err := ingest.ParseHTML(page)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}

	games := fox.ParseSchedule(doc, s.schedule.BaseURL(), seasonType, week)
	log.Printf("[sheets] %d games on %s week %d", len(games), seasonType, week)
	return games, nil
}

// Depth returns the offense depth for a team code
func (s *SheetService) Depth(ctx context.Context, code string) (teams.Team, depth.OffenseDepth, error) {
	team, ok := teams.Lookup(code)
	if !ok {
		return teams.Team{}, depth.OffenseDepth{}, fmt.Errorf("unknown team %q", code)
	}

	src, err := s.depthSource(ctx)
	if err != nil {
		return teams.Team{}, depth.OffenseDepth{}, err
	}
	return team, src.Offense(team.Name), nil
}

// Generate scrapes one week and renders a sheet per game. Any failure aborts
// the run; history and publishing failures are logged only.
func (s *SheetService) Generate(ctx context.Context, req Request, reporter batch.Reporter) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	games, err := s.Schedule(ctx, req.SeasonType, req.Week)
	if err != nil {
		return nil, err
	}

	src, err := s.depthSource(ctx)
	if err != nil {
		return nil, err
	}

	gen := batch.NewGenerator(render.NewRenderer(s.layout, req.SeasonYear))
	docs, err := gen.Generate(games, src, reporter)
	if err != nil {
		return nil, fmt.Errorf("generating sheets: %w", err)
	}

	run := &store.Run{
		RunID:      uuid.NewString(),
		SeasonType: req.SeasonType,
		Week:       req.Week,
		SeasonYear: req.SeasonYear,
		GameCount:  len(games),
		Files:      make([]string, 0, len(docs)),
		CreatedAt:  s.now(),
	}
	for _, doc := range docs {
		run.Files = append(run.Files, doc.Name)
	}

	s.record(ctx, run)

	return &Result{Run: run, Games: games, Documents: docs}, nil
}

// RecentRuns lists stored runs, newest first
func (s *SheetService) RecentRuns(ctx context.Context, limit int) ([]*store.Run, error) {
	if s.runs == nil {
		return nil, nil
	}
	return s.runs.Recent(ctx, limit)
}

// Run returns one stored run. Without a run store every lookup is store.ErrNotFound.
func (s *SheetService) Run(ctx context.Context, runID string) (*store.Run, error) {
	if s.runs == nil {
		return nil, store.ErrNotFound
	}
	return s.runs.GetByID(ctx, runID)
}

func (s *SheetService) depthSource(ctx context.Context) (*ourlads.Source, error) {
	page, err := s.depth.FetchDepthCharts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching depth charts: %w", err)
	}
	src, err := ourlads.NewSource(page)
	if err != nil {
		return nil, fmt.Errorf("parsing depth charts: %w", err)
	}
	return src, nil
}

func (s *SheetService) record(ctx context.Context, run *store.Run) {
	if s.runs != nil {
		stored, err := s.runs.Create(ctx, run)
		if err != nil {
			log.Printf("[sheets] failed to store run %s: %v", run.RunID, err)
		} else {
			run.CreatedAt = stored.CreatedAt
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRun(ctx, run); err != nil {
			log.Printf("[sheets] failed to publish run %s: %v", run.RunID, err)
		}
	}
}
