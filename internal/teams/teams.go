package teams

import (
	"sort"
	"strings"
)

// DefaultColor is used for codes missing from the color table
const DefaultColor = "#000000"

// Team describes one NFL franchise
type Team struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

var names = map[string]string{
	"ARI": "Arizona Cardinals", "ATL": "Atlanta Falcons", "BAL": "Baltimore Ravens", "BUF": "Buffalo Bills",
	"CAR": "Carolina Panthers", "CHI": "Chicago Bears", "CIN": "Cincinnati Bengals", "CLE": "Cleveland Browns",
	"DAL": "Dallas Cowboys", "DEN": "Denver Broncos", "DET": "Detroit Lions", "GB": "Green Bay Packers",
	"HOU": "Houston Texans", "IND": "Indianapolis Colts", "JAX": "Jacksonville Jaguars", "KC": "Kansas City Chiefs",
	"LAC": "Los Angeles Chargers", "LAR": "Los Angeles Rams", "LV": "Las Vegas Raiders", "MIA": "Miami Dolphins",
	"MIN": "Minnesota Vikings", "NE": "New England Patriots", "NO": "New Orleans Saints", "NYG": "New York Giants",
	"NYJ": "New York Jets", "PHI": "Philadelphia Eagles", "PIT": "Pittsburgh Steelers", "SEA": "Seattle Seahawks",
	"SF": "San Francisco 49ers", "TB": "Tampa Bay Buccaneers", "TEN": "Tennessee Titans", "WAS": "Washington Commanders",
}

var colors = map[string]string{
	"ARI": "#97233F", "ATL": "#A71930", "BAL": "#241773", "BUF": "#00338D", "CAR": "#0085CA", "CHI": "#0B162A",
	"CIN": "#FB4F14", "CLE": "#FF3C00", "DAL": "#041E42", "DEN": "#FB4F14", "DET": "#0076B6", "GB": "#203731",
	"HOU": "#03202F", "IND": "#002C5F", "JAX": "#006778", "KC": "#E31837", "LAC": "#0080C6", "LAR": "#003594",
	"LV": "#000000", "MIA": "#008E97", "MIN": "#4F2683", "NE": "#002244", "NO": "#D3BC8D", "NYG": "#0B2265",
	"NYJ": "#125740", "PHI": "#004C54", "PIT": "#FFB612", "SEA": "#002244", "SF": "#AA0000", "TB": "#D50A0A",
	"TEN": "#4B92DB", "WAS": "#5A1414",
}

// FullName returns the franchise name for a code, or "" when the code is unknown.
// The depth chart lookup keys on this value.
func FullName(code string) string {
	return names[strings.TrimSpace(code)]
}

// DisplayName returns the franchise name, falling back to the raw code and
// then to placeholder when the code is empty
func DisplayName(code, placeholder string) string {
	code = strings.TrimSpace(code)
	if name, ok := names[code]; ok {
		return name
	}
	if code != "" {
		return code
	}
	return placeholder
}

// Color returns the brand color for a code
func Color(code string) string {
	if hex, ok := colors[strings.TrimSpace(code)]; ok {
		return hex
	}
	return DefaultColor
}

// Lookup returns the team for a code
func Lookup(code string) (Team, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name, ok := names[code]
	if !ok {
		return Team{}, false
	}
	return Team{Code: code, Name: name, Color: Color(code)}, true
}

// All returns every team sorted by code
func All() []Team {
	out := make([]Team, 0, len(names))
	for code, name := range names {
		out = append(out, Team{Code: code, Name: name, Color: Color(code)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
