package main

import (
	"context"
	"fmt"
	"log"

	"github.com/fortuna/depthsheets/internal/api/rest"
	"github.com/fortuna/depthsheets/internal/cache"
	"github.com/fortuna/depthsheets/internal/config"
	"github.com/fortuna/depthsheets/internal/ingest/fox"
	"github.com/fortuna/depthsheets/internal/ingest/ourlads"
	"github.com/fortuna/depthsheets/internal/publisher"
	"github.com/fortuna/depthsheets/internal/service"
	"github.com/fortuna/depthsheets/internal/store"
)

// app holds the wired service and everything that must be closed with it
type app struct {
	sheets  *service.SheetService
	roster  *ourlads.Client
	checks  map[string]rest.HealthChecker
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApp connects the cache, fetchers and optional run history
func buildApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{checks: make(map[string]rest.HealthChecker)}

	var (
		rosterCache cache.Cache
		runs        service.RunRecorder
		pub         service.RunPublisher
	)

	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.closers = append(a.closers, func() { redisCache.Close() })
		rosterCache = redisCache
		a.checks["redis"] = redisCache
		pub = publisher.NewRedisStreamPublisher(redisCache.Client())
		log.Println("✓ Connected to Redis")
	} else {
		boltCache, err := cache.NewBoltCache(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache file: %w", err)
		}
		a.closers = append(a.closers, func() { boltCache.Close() })
		rosterCache = boltCache
		log.Printf("✓ Using file cache %s", cfg.CachePath)
	}

	if cfg.DatabaseURL != "" {
		db, err := store.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() { db.Close() })
		a.checks["database"] = db
		log.Println("✓ Connected to database")

		if err := db.RunMigrations(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		log.Println("✓ Database migrations applied")
		runs = store.NewRunRepository(db)
	}

	var schedule service.ScheduleFetcher
	switch cfg.FetchMode {
	case config.FetchBrowser:
		browser := fox.NewBrowserClient(cfg.FoxBaseURL)
		a.closers = append(a.closers, browser.Close)
		schedule = browser
	default:
		schedule = fox.NewClient(cfg.FoxBaseURL)
	}
	log.Printf("✓ Schedule fetch mode: %s", cfg.FetchMode)

	a.roster = ourlads.NewClient(cfg.OurladsURL, rosterCache, cfg.RosterCacheTTL)
	a.sheets = service.NewSheetService(schedule, a.roster, cfg.Layout(), runs, pub)
	return a, nil
}
