package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeasonType(t *testing.T) {
	tests := []struct {
		in      string
		want    SeasonType
		wantErr bool
	}{
		{in: "pre", want: SeasonPre},
		{in: "REG", want: SeasonRegular},
		{in: "", want: SeasonRegular},
		{in: "postseason", want: SeasonPost},
		{in: " post ", want: SeasonPost},
		{in: "playoffs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeasonType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
