// Package render turns a game record and both teams' depth charts into the
// text sheet published for each matchup.
package render

import (
	"strings"
	"text/template"

	"github.com/fortuna/depthsheets/internal/depth"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/fortuna/depthsheets/internal/teams"
)

const sheetTemplate = `
<p style="text-align: center;"><span style="color: #339966; font-size: 28pt;"><strong>Game Info</strong></span></p>
&nbsp;
<p style="text-align: center;"><strong>Kickoff</strong>: {{.Kickoff}}</p>
<p style="text-align: center;"><strong>Location</strong>: {{.Location}}</p>
<p style="text-align: center;"><strong>Network</strong>: {{.Network}}</p>
&nbsp;
<p style="text-align: center;"><span style="color: {{.Away.Color}};"><strong><span style="font-size: 28pt;" data-preserver-spaces="true">{{.Away.Name}}</span></strong></span></p>
&nbsp;

<span style="font-size: 20pt; color: #3366ff;"><strong>Quarterback</strong></span>

{{.Away.QB}}

<span data-preserver-spaces="true">DISCUSSION</span>

&nbsp;

<span style="font-size: 20pt; color: #993300;"><strong>Running Back</strong></span>

{{.Away.RB}}

<span data-preserver-spaces="true">DISCUSSION</span>

&nbsp;

<span style="font-size: 20pt; color: #008000;"><strong>Wide Receiver</strong></span>

{{.Away.WR}}

<span data-preserver-spaces="true">DISCUSSION</span>

&nbsp;

<span style="font-size: 20pt; color: #333399;"><strong>Tight End</strong></span>

{{.Away.TE}}

<span data-preserver-spaces="true">DISCUSSION</span>

&nbsp;
<p style="text-align: center;"><span style="color: {{.Home.Color}};"><strong><span style="font-size: 28pt;">{{.Home.Name}}</span></strong></span></p>
&nbsp;

<span style="font-size: 20pt; color: #3366ff;"><strong>Quarterback</strong></span>

{{.Home.QB}}

DISCUSSION

&nbsp;

<span style="font-size: 20pt; color: #993300;"><strong>Running Back</strong></span>

{{.Home.RB}}

DISCUSSION

&nbsp;

<span style="font-size: 20pt; color: #008000;"><strong>Wide Receiver</strong></span>

{{.Home.WR}}

DISCUSSION

&nbsp;

<span style="font-size: 20pt; color: #333399;"><strong>Tight End</strong></span>

{{.Home.TE}}

DISCUSSION
`

var sheet = template.Must(template.New("sheet").Parse(sheetTemplate))

type teamBlock struct {
	Name  string
	Color string
	QB    string
	RB    string
	WR    string
	TE    string
}

type sheetData struct {
	Kickoff  string
	Location string
	Network  string
	Away     teamBlock
	Home     teamBlock
}

// Renderer renders matchup sheets with a fixed line layout
type Renderer struct {
	layout     Layout
	seasonYear int
}

// NewRenderer creates a renderer for the season starting in seasonYear
func NewRenderer(layout Layout, seasonYear int) *Renderer {
	return &Renderer{layout: layout, seasonYear: seasonYear}
}

// Render produces the sheet for one game. Missing fields render as
// placeholders, so Render never fails.
func (r *Renderer) Render(game store.GameRecord, away, home depth.OffenseDepth) string {
	awayCode := strings.TrimSpace(game.Away)
	homeCode := strings.TrimSpace(game.Home)

	data := sheetData{
		Kickoff:  FormatKickoff(game.DateLabel, game.TimeLocal, r.seasonYear),
		Location: LocationLine(game.Venue, game.City),
		Network:  game.Network,
		Away:     block(teams.DisplayName(awayCode, "Away Team"), teams.Color(awayCode), away, r.layout.Away),
		Home:     block(teams.DisplayName(homeCode, "Home Team"), teams.Color(homeCode), home, r.layout.Home),
	}

	var b strings.Builder
	// sheetData only holds strings, so Execute cannot fail on a strings.Builder
	_ = sheet.Execute(&b, data)
	return strings.TrimSpace(b.String())
}

func block(name, color string, off depth.OffenseDepth, lines Lines) teamBlock {
	return teamBlock{
		Name:  name,
		Color: color,
		QB:    BoldLines(off.QB, lines[Quarterback]),
		RB:    BoldLines(off.RB, lines[RunningBack]),
		WR:    BoldLines(off.WR, lines[WideReceiver]),
		TE:    BoldLines(off.TE, lines[TightEnd]),
	}
}

// LocationLine joins venue and city, falling back to whichever is present
func LocationLine(venue, city string) string {
	switch {
	case venue != "" && city != "":
		return venue + ", " + city
	case venue != "":
		return venue
	case city != "":
		return city
	}
	return "TBD"
}
