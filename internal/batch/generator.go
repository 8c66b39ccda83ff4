// Package batch renders one sheet per game for a scraped week.
package batch

import (
	"fmt"
	"log"
	"strings"

	"github.com/fortuna/depthsheets/internal/depth"
	"github.com/fortuna/depthsheets/internal/render"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/fortuna/depthsheets/internal/teams"
)

// DepthSource looks up a team's offense by display name
type DepthSource interface {
	Offense(teamName string) depth.OffenseDepth
}

// Document is one rendered sheet
type Document struct {
	Name string `json:"name"`
	Away string `json:"away"`
	Home string `json:"home"`
	Body string `json:"body"`
}

// Reporter receives a callback after each sheet is rendered
type Reporter interface {
	OnDocument(doc Document, index int, total int)
}

// Generator renders sheets with a fixed renderer
type Generator struct {
	renderer *render.Renderer
}

// NewGenerator creates a generator
func NewGenerator(renderer *render.Renderer) *Generator {
	return &Generator{renderer: renderer}
}

// Generate renders every game in order. Each team's offense is looked up once
// per call. Any failure aborts the whole batch and no documents are returned.
func (g *Generator) Generate(games []store.GameRecord, src DepthSource, reporter Reporter) ([]Document, error) {
	offenses := make(map[string]depth.OffenseDepth)
	lookup := func(teamName string) depth.OffenseDepth {
		if off, ok := offenses[teamName]; ok {
			return off
		}
		off := src.Offense(teamName)
		if off.Empty() && teamName != "" {
			log.Printf("[batch] no offense section found for %s", teamName)
		}
		offenses[teamName] = off
		return off
	}

	docs := make([]Document, 0, len(games))
	seen := make(map[string]int)

	for i, game := range games {
		if game.Week <= 0 {
			return nil, fmt.Errorf("game %d (%s at %s): invalid week %d", i, game.Away, game.Home, game.Week)
		}

		awayOff := lookup(teams.FullName(game.Away))
		homeOff := lookup(teams.FullName(game.Home))

		doc := Document{
			Name: render.FileName(game.Week, game.Away, game.Home),
			Away: game.Away,
			Home: game.Home,
			Body: g.renderer.Render(game, awayOff, homeOff),
		}

		// unresolved playoff slots can share AWAY_at_HOME
		seen[doc.Name]++
		if n := seen[doc.Name]; n > 1 {
			doc.Name = fmt.Sprintf("%s-%d.txt", strings.TrimSuffix(doc.Name, ".txt"), n)
		}

		docs = append(docs, doc)
		if reporter != nil {
			reporter.OnDocument(doc, i, len(games))
		}
	}

	log.Printf("[batch] rendered %d sheets (%d teams looked up)", len(docs), len(offenses))
	return docs, nil
}
