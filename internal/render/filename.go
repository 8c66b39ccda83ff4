package render

import (
	"fmt"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Slug replaces runs of characters outside [A-Za-z0-9._-] with "_" and trims
// leading and trailing underscores
func Slug(s string) string {
	return strings.Trim(unsafeChars.ReplaceAllString(s, "_"), "_")
}

// FileName names the sheet for a matchup, e.g. "W02_ARI_at_BUF.txt"
func FileName(week int, away, home string) string {
	a := Slug(strings.TrimSpace(away))
	if a == "" {
		a = "AWAY"
	}
	h := Slug(strings.TrimSpace(home))
	if h == "" {
		h = "HOME"
	}
	return fmt.Sprintf("W%02d_%s_at_%s.txt", week, a, h)
}
