package store

import (
	"fmt"
	"strings"
	"time"
)

// SeasonType identifies the part of the NFL season a week belongs to
type SeasonType string

const (
	SeasonPre     SeasonType = "pre"
	SeasonRegular SeasonType = "reg"
	SeasonPost    SeasonType = "post"
)

// ParseSeasonType accepts the short codes used by the schedule page along
// with their long forms
func ParseSeasonType(s string) (SeasonType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preseason":
		return SeasonPre, nil
	case "reg", "regular", "":
		return SeasonRegular, nil
	case "post", "postseason":
		return SeasonPost, nil
	}
	return "", fmt.Errorf("unknown season type %q (use pre, reg or post)", s)
}

// GameRecord is one scheduled matchup scraped from the weekly schedule page.
// Absent values are empty strings.
type GameRecord struct {
	SeasonType  SeasonType `json:"season_type"`
	Week        int        `json:"week"`
	DateLabel   string     `json:"date_label,omitempty"`
	TimeLocal   string     `json:"time_local,omitempty"`
	Network     string     `json:"network,omitempty"`
	Away        string     `json:"away"`
	Home        string     `json:"home"`
	Venue       string     `json:"venue,omitempty"`
	City        string     `json:"city,omitempty"`
	Odds        string     `json:"odds,omitempty"`
	BoxScoreURL string     `json:"boxscore_url,omitempty"`
}

// Run is the persisted summary of one batch generation
type Run struct {
	RunID      string     `json:"run_id" db:"run_id"`
	SeasonType SeasonType `json:"season_type" db:"season_type"`
	Week       int        `json:"week" db:"week"`
	SeasonYear int        `json:"season_year" db:"season_year"`
	GameCount  int        `json:"game_count" db:"game_count"`
	Files      []string   `json:"files" db:"files"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}
