package depth

import "strings"

const offensePrefix = "offense - "

// sectionStops are the header prefixes that end an offense section. Any other
// header text is walked over like a data row.
var sectionStops = []string{"defense -", "special teams -", "practice squad -", "reserves -", "offense -"}

const maxReceivers = 3

// sectionScan carries the state of one walk over an offense section
type sectionScan struct {
	result OffenseDepth

	left, right, slot string
}

// ParseOffense finds the offense section for teamName (case-insensitive
// substring of the section header) and returns its QB/RB/WR/TE groups.
// A missing section yields an empty result.
func ParseOffense(groups []RowGroup, teamName string) OffenseDepth {
	g, start, ok := findOffenseHeader(groups, teamName)
	if !ok {
		return OffenseDepth{}
	}

	scan := &sectionScan{}
	for _, row := range groups[g][start+1:] {
		if isSectionStop(row.Header) {
			break
		}
		scan.visit(row)
	}
	return scan.finish()
}

func findOffenseHeader(groups []RowGroup, teamName string) (int, int, bool) {
	team := strings.ToLower(strings.TrimSpace(teamName))
	if team == "" {
		return 0, 0, false
	}
	for g, group := range groups {
		for i, row := range group {
			for _, h := range row.headers() {
				hdr := strings.ToLower(h)
				if strings.HasPrefix(hdr, offensePrefix) && strings.Contains(hdr, team) {
					return g, i, true
				}
			}
		}
	}
	return 0, 0, false
}

func isSectionStop(header string) bool {
	if header == "" {
		return false
	}
	hdr := strings.ToLower(header)
	for _, prefix := range sectionStops {
		if strings.HasPrefix(hdr, prefix) {
			return true
		}
	}
	return false
}

func (s *sectionScan) visit(row Row) {
	if len(row.Cells) < 4 {
		return
	}
	pos := strings.TrimSpace(row.Cells[1])
	players := rowPlayers(row)

	switch pos {
	case "QB":
		s.result.QB = players
	case "RB":
		s.result.RB = players
	case "TE":
		s.result.TE = players
	case "LWR", "RWR", "SWR":
		starter := ""
		if len(players) > 0 {
			starter = players[0]
		}
		s.setStarter(pos, starter)
	case "WR":
		if !s.hasStarter() && len(s.result.WR) == 0 {
			s.result.WR = capNames(players, maxReceivers)
		}
	}
}

// setStarter keeps the first starter seen for each receiver slot
func (s *sectionScan) setStarter(pos, name string) {
	var slot *string
	switch pos {
	case "LWR":
		slot = &s.left
	case "RWR":
		slot = &s.right
	case "SWR":
		slot = &s.slot
	}
	if *slot == "" {
		*slot = name
	}
}

func (s *sectionScan) hasStarter() bool {
	return s.left != "" || s.right != "" || s.slot != ""
}

func (s *sectionScan) finish() OffenseDepth {
	var starters []string
	for _, name := range []string{s.left, s.right, s.slot} {
		if name != "" {
			starters = append(starters, name)
		}
	}
	if len(starters) > 0 {
		s.result.WR = capNames(starters, maxReceivers)
	}
	return s.result
}

func rowPlayers(row Row) []string {
	var out []string
	for _, raw := range row.Players {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if name := NormalizeName(raw); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func capNames(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	return names
}

// headers falls back to Header for rows built without the full list
func (r Row) headers() []string {
	if len(r.Headers) > 0 {
		return r.Headers
	}
	if r.Header != "" {
		return []string{r.Header}
	}
	return nil
}
