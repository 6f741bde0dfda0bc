package meetings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		isOK     bool
	}{
		{"00:00", 0, true},
		{"08:30", 510, true},
		{"23:59", 1439, true},
		{"24:00", EndOfDay, true},
		{"25:00", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(
			tt.input,
			func(t *testing.T) {
				minutes, errParse := ParseTimeOfDay(tt.input)

				if !tt.isOK {
					require.Error(t, errParse)

					return
				}

				require.NoError(t, errParse)
				require.Equal(t, tt.expected, minutes)
			},
		)
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	require.Equal(t, "00:00", FormatTimeOfDay(StartOfDay))
	require.Equal(t, "08:05", FormatTimeOfDay(485))
	require.Equal(t, "24:00", FormatTimeOfDay(EndOfDay))
}
