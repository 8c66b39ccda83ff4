package fox

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fortuna/depthsheets/internal/ingest"
	"github.com/fortuna/depthsheets/internal/store"
)

// ParseSchedule extracts one GameRecord per schedule row. Box-score links are
// resolved against baseURL. Rows with fewer than six cells are skipped.
func ParseSchedule(doc *goquery.Document, baseURL string, seasonType store.SeasonType, week int) []store.GameRecord {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var games []store.GameRecord
	doc.Find(".scores-scorechips-container .table-segment").Each(func(_ int, seg *goquery.Selection) {
		dateLabel := ingest.Text(seg.Find(".table-title"))

		tbody := seg.Find("table.data-table").First().Find("tbody").First()
		if tbody.Length() == 0 {
			return
		}

		tbody.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			if game, ok := parseRow(tr, base); ok {
				game.SeasonType = seasonType
				game.Week = week
				game.DateLabel = dateLabel
				games = append(games, game)
			}
		})
	})

	return games
}

func parseRow(tr *goquery.Selection, base *url.URL) (store.GameRecord, bool) {
	tds := tr.Find("td")
	if tds.Length() < 6 {
		return store.GameRecord{}, false
	}

	game := store.GameRecord{}

	teamNames := tr.Find(".table-entity-name")
	game.Away = ingest.Text(teamNames.Eq(0))
	game.Home = ingest.Text(teamNames.Eq(1))

	if href, ok := tr.Find(".table-entity a[href*='/nfl/week-']").First().Attr("href"); ok {
		game.BoxScoreURL = resolveLink(base, href)
	}

	status := tds.Eq(3)
	game.TimeLocal = ingest.Text(status.Find(".table-result"))
	if sub := status.Find(".table-subtext"); sub.Length() > 0 {
		game.Network = ingest.Text(sub)
	} else if alt, ok := status.Find("img.tv-station").First().Attr("alt"); ok {
		game.Network = alt
	}

	venue := tds.Eq(4)
	venueFull := ingest.SpacedText(venue)
	game.City = ingest.Text(venue.Find(".table-subtext"))
	if game.City != "" {
		venueFull = strings.TrimRight(strings.ReplaceAll(venueFull, game.City, ""), ", ")
	}
	game.Venue = strings.TrimSpace(venueFull)

	game.Odds = ingest.Text(tds.Eq(5).Find(".table-result"))

	return game, true
}

func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
