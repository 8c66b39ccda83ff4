package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesCoverLeague(t *testing.T) {
	require.Len(t, names, 32)
	require.Len(t, colors, 32)
	for code := range names {
		_, ok := colors[code]
		assert.True(t, ok, "missing color for %s", code)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		placeholder string
		want        string
	}{
		{name: "known", code: "ARI", placeholder: "Away Team", want: "Arizona Cardinals"},
		{name: "padded", code: " KC ", placeholder: "Away Team", want: "Kansas City Chiefs"},
		{name: "unknown falls back to code", code: "XYZ", placeholder: "Away Team", want: "XYZ"},
		{name: "empty falls back to placeholder", code: "", placeholder: "Home Team", want: "Home Team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.code, tt.placeholder))
		})
	}
}

func TestColorFallback(t *testing.T) {
	assert.Equal(t, "#97233F", Color("ARI"))
	assert.Equal(t, DefaultColor, Color("XYZ"))
	assert.Equal(t, DefaultColor, Color(""))
}

func TestFullNameUnknownIsEmpty(t *testing.T) {
	assert.Equal(t, "Green Bay Packers", FullName("GB"))
	assert.Equal(t, "", FullName("GBP"))
}

func TestLookupAndAll(t *testing.T) {
	team, ok := Lookup("sf")
	require.True(t, ok)
	assert.Equal(t, Team{Code: "SF", Name: "San Francisco 49ers", Color: "#AA0000"}, team)

	_, ok = Lookup("nope")
	assert.False(t, ok)

	all := All()
	require.Len(t, all, 32)
	assert.Equal(t, "ARI", all[0].Code)
	assert.Equal(t, "WAS", all[31].Code)
}
