// Package depth extracts offensive skill-position groups from depth chart
// rows and normalizes the player names found in them.
package depth

// OffenseDepth holds one team's skill-position groups in depth chart order
type OffenseDepth struct {
	QB []string `json:"qb"`
	RB []string `json:"rb"`
	WR []string `json:"wr"`
	TE []string `json:"te"`
}

// Empty reports whether no names were extracted
func (o OffenseDepth) Empty() bool {
	return len(o.QB) == 0 && len(o.RB) == 0 && len(o.WR) == 0 && len(o.TE) == 0
}

// Row is one depth chart table row reduced to plain text
type Row struct {
	// Header is the text of the row's first section header cell, if it has one
	Header string
	// Headers holds every section header cell in the row, Header first
	Headers []string
	Cells   []string
	Players []string
}

// RowGroup is a run of sibling rows sharing one parent table body
type RowGroup []Row
