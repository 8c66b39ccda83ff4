package ourlads

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fortuna/depthsheets/internal/depth"
	"github.com/fortuna/depthsheets/internal/ingest"
	"golang.org/x/net/html"
)

// ExtractRows reduces every table row on the page to a depth.Row, grouped by
// parent element so that sibling order is preserved
func ExtractRows(doc *goquery.Document) []depth.RowGroup {
	var groups []depth.RowGroup
	index := make(map[*html.Node]int)

	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		parent := tr.Nodes[0].Parent
		g, ok := index[parent]
		if !ok {
			g = len(groups)
			index[parent] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], extractRow(tr))
	})

	return groups
}

func extractRow(tr *goquery.Selection) depth.Row {
	row := depth.Row{}

	tr.Find("td.dt-sh").Each(func(_ int, td *goquery.Selection) {
		row.Headers = append(row.Headers, ingest.SpacedText(td))
	})
	if len(row.Headers) > 0 {
		row.Header = row.Headers[0]
	}

	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		row.Cells = append(row.Cells, ingest.Text(td))
	})

	tr.Find("a").Each(func(_ int, a *goquery.Selection) {
		row.Players = append(row.Players, a.Text())
	})

	return row
}
