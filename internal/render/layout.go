package render

import (
	"fmt"
	"strings"
)

// Position is one rendered skill-position group
type Position string

const (
	Quarterback  Position = "qb"
	RunningBack  Position = "rb"
	WideReceiver Position = "wr"
	TightEnd     Position = "te"
)

// Lines is the number of name lines rendered per position group
type Lines map[Position]int

// Layout holds the line counts for each side of a matchup
type Layout struct {
	Away Lines
	Home Lines
}

// DefaultLayout renders one quarterback line for both teams
var DefaultLayout = Layout{
	Away: Lines{Quarterback: 1, RunningBack: 3, WideReceiver: 3, TightEnd: 1},
	Home: Lines{Quarterback: 1, RunningBack: 3, WideReceiver: 3, TightEnd: 1},
}

// LegacyLayout reproduces the older sheets that listed two away quarterbacks
var LegacyLayout = Layout{
	Away: Lines{Quarterback: 2, RunningBack: 3, WideReceiver: 3, TightEnd: 1},
	Home: Lines{Quarterback: 1, RunningBack: 3, WideReceiver: 3, TightEnd: 1},
}

// WithAwayQuarterbacks returns a copy of l with the away quarterback count replaced
func (l Layout) WithAwayQuarterbacks(n int) Layout {
	out := Layout{Away: Lines{}, Home: Lines{}}
	for k, v := range l.Away {
		out.Away[k] = v
	}
	for k, v := range l.Home {
		out.Home[k] = v
	}
	out.Away[Quarterback] = n
	return out
}

// Validate checks every position has a non-negative count on both sides
func (l Layout) Validate() error {
	for _, side := range []struct {
		name  string
		lines Lines
	}{{"away", l.Away}, {"home", l.Home}} {
		for _, pos := range []Position{Quarterback, RunningBack, WideReceiver, TightEnd} {
			n, ok := side.lines[pos]
			if !ok {
				return fmt.Errorf("%s layout is missing %s", side.name, pos)
			}
			if n < 0 {
				return fmt.Errorf("%s layout has negative count for %s", side.name, pos)
			}
		}
	}
	return nil
}

// BoldLines renders exactly n emphasis-wrapped lines, truncating or padding names
func BoldLines(names []string, n int) string {
	lines := make([]string, n)
	for i := range lines {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		lines[i] = "<b>" + name + "</b>"
	}
	return strings.Join(lines, "\n")
}
