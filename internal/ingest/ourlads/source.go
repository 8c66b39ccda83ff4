package ourlads

import (
	"github.com/fortuna/depthsheets/internal/depth"
	"github.com/fortuna/depthsheets/internal/ingest"
)

// Source answers offense lookups against one fetched depth chart page
type Source struct {
	groups []depth.RowGroup
}

// NewSource parses the raw page once
func NewSource(page string) (*Source, error) {
	doc, err := ingest.ParseHTML(page)
	if err != nil {
		return nil, err
	}
	return &Source{groups: ExtractRows(doc)}, nil
}

// Offense returns the offense depth for a team display name
func (s *Source) Offense(teamName string) depth.OffenseDepth {
	return depth.ParseOffense(s.groups, teamName)
}
