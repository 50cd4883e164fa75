package customercode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCode(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		yearYY   string
		sequence int64
		want     string
		wantErr  bool
	}{
		{name: "prefixed first code", prefix: "E", yearYY: "26", sequence: 1, want: "E260001"},
		{name: "empty prefix", prefix: "", yearYY: "26", sequence: 1, want: "260001"},
		{name: "second company prefix", prefix: "T", yearYY: "26", sequence: 1, want: "T260001"},
		{name: "pads to four digits", prefix: "E", yearYY: "27", sequence: 42, want: "E270042"},
		{name: "widens past 9999", prefix: "E", yearYY: "26", sequence: 10000, want: "E2610000"},
		{name: "widens far past 9999", prefix: "", yearYY: "26", sequence: 123456, want: "26123456"},
		{name: "rejects zero sequence", prefix: "E", yearYY: "26", sequence: 0, wantErr: true},
		{name: "rejects negative sequence", prefix: "E", yearYY: "26", sequence: -7, wantErr: true},
		{name: "rejects one digit year", prefix: "E", yearYY: "6", sequence: 1, wantErr: true},
		{name: "rejects four digit year", prefix: "E", yearYY: "2026", sequence: 1, wantErr: true},
		{name: "rejects non numeric year", prefix: "E", yearYY: "2a", sequence: 1, wantErr: true},
		{name: "rejects oversized prefix", prefix: "ABCDE", yearYY: "26", sequence: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatCode(tt.prefix, tt.yearYY, tt.sequence)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearSegment(t *testing.T) {
	year, ok := YearSegment("E260001", "E")
	require.True(t, ok)
	assert.Equal(t, "26", year)

	year, ok = YearSegment("260001", "")
	require.True(t, ok)
	assert.Equal(t, "26", year)

	_, ok = YearSegment("E260001", "T")
	assert.False(t, ok)

	_, ok = YearSegment("E", "E")
	assert.False(t, ok)
}
