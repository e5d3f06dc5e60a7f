package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fmtkit/pkg/format"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		opts     []format.BytesOption
		expected string
	}{
		{
			name:     "single byte",
			input:    1,
			expected: "1 b",
		},
		{
			name:     "zero bytes",
			input:    0,
			expected: "0 b",
		},
		{
			name:     "exactly one kilobyte",
			input:    1024,
			expected: "1 kb",
		},
		{
			name:     "fractional kilobytes trimmed to significant digits",
			input:    1793,
			expected: "1.75 kb",
		},
		{
			name:     "higher precision keeps the extra digit",
			input:    1793,
			opts:     []format.BytesOption{format.Precision(3)},
			expected: "1.751 kb",
		},
		{
			name:     "precision zero rounds to whole units",
			input:    1793,
			opts:     []format.BytesOption{format.Precision(0)},
			expected: "2 kb",
		},
		{
			name:     "exactly one gigabyte",
			input:    1073741824,
			expected: "1 GB",
		},
		{
			name:     "terabytes",
			input:    1099511627776,
			expected: "1 TB",
		},
		{
			name:     "value beyond the table clamps to the largest unit",
			input:    1 << 62,
			opts:     []format.BytesOption{format.WithUnits([]string{"b", "kb"})},
			expected: "4503599627370496 kb",
		},
		{
			name:     "custom unit labels",
			input:    2048,
			opts:     []format.BytesOption{format.WithUnits([]string{"B", "KiB", "MiB"})},
			expected: "2 KiB",
		},
		{
			name:     "custom separator",
			input:    1024,
			opts:     []format.BytesOption{format.WithUnitSeparator("")},
			expected: "1kb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := format.Bytes(tt.input, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBytesNegativeInput(t *testing.T) {
	_, err := format.Bytes(-1)
	assert.ErrorIs(t, err, format.ErrNegativeBytes)
}
