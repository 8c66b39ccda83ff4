package ourlads

import (
	"os"
	"testing"

	"github.com/fortuna/depthsheets/internal/depth"
	"github.com/fortuna/depthsheets/internal/ingest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSource(t *testing.T) *Source {
	t.Helper()
	page, err := os.ReadFile("testdata/depthcharts.html")
	require.NoError(t, err)

	src, err := NewSource(string(page))
	require.NoError(t, err)
	return src
}

func TestExtractRows(t *testing.T) {
	doc, err := ingest.ParseHTML(`<table><tbody>
		<tr><td class="dt-sh">Offense -<a>Team A</a></td></tr>
		<tr><td>1</td><td> QB </td><td><a> Passer, Guy 1/1 </a></td><td></td></tr>
	</tbody></table>
	<table><tbody><tr><td>x</td></tr></tbody></table>`)
	require.NoError(t, err)

	groups := ExtractRows(doc)
	want := []depth.RowGroup{
		{
			{Header: "Offense - Team A", Headers: []string{"Offense - Team A"}, Cells: []string{"Offense -Team A"}, Players: []string{"Team A"}},
			{Cells: []string{"1", "QB", "Passer, Guy 1/1", ""}, Players: []string{" Passer, Guy 1/1 "}},
		},
		{
			{Cells: []string{"x"}},
		},
	}

	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceFindsOffenseInLaterHeaderCell(t *testing.T) {
	src, err := NewSource(`<table><tbody>
		<tr><td class="dt-sh">Week 2 Updates</td><td class="dt-sh">Offense - Team B</td></tr>
		<tr><td>1</td><td>QB</td><td><a>Thrower, Sam 9/1</a></td><td></td></tr>
		<tr><td class="dt-sh">Defense - Team B</td></tr>
		<tr><td>1</td><td>LDE</td><td><a>Rusher, Max 9/1</a></td><td></td></tr>
	</tbody></table>`)
	require.NoError(t, err)

	got := src.Offense("Team B")
	assert.Equal(t, []string{"Sam Thrower"}, got.QB)
	assert.Empty(t, got.RB)
}

func TestSourceOffense(t *testing.T) {
	src := loadSource(t)

	tests := []struct {
		team string
		want depth.OffenseDepth
	}{
		{
			team: "Arizona Cardinals",
			want: depth.OffenseDepth{
				QB: []string{"Kyler Murray", "Jacoby Brissett"},
				RB: []string{"James Conner", "Trey Benson"},
				WR: []string{"Marvin Harrison Jr.", "Michael Wilson", "Greg Dortch"},
				TE: []string{"Trey McBride", "Elijah Higgins"},
			},
		},
		{
			team: "atlanta falcons",
			want: depth.OffenseDepth{
				QB: []string{"Michael Penix Jr.", "Kirk Cousins"},
				WR: []string{"Drake London", "Darnell Mooney", "Ray-Ray McCloud"},
			},
		},
		{
			team: "Buffalo Bills",
			want: depth.OffenseDepth{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			got := src.Offense(tt.team)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("offense mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSourceOffenseIgnoresOtherSections(t *testing.T) {
	src := loadSource(t)

	assert.NotContains(t, src.Offense("Arizona Cardinals").QB, "Wrong Defender")
	assert.NotContains(t, src.Offense("Atlanta Falcons").QB, "Wrong Kicker")
}
