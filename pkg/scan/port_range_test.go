package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPortRange(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		end     int
		wantErr bool
	}{
		{name: "valid range", start: 1, end: 1024, wantErr: false},
		{name: "single port", start: 443, end: 443, wantErr: false},
		{name: "full range", start: 1, end: 65535, wantErr: false},
		{name: "reversed", start: 100, end: 50, wantErr: true},
		{name: "zero start", start: 0, end: 80, wantErr: true},
		{name: "negative start", start: -1, end: 80, wantErr: true},
		{name: "end too large", start: 1, end: 65536, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := NewPortRange(tt.start, tt.end)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPortRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.start, rng.Start)
			assert.Equal(t, tt.end, rng.End)
		})
	}
}

func TestPortRangeCount(t *testing.T) {
	rng, err := NewPortRange(20, 25)
	require.NoError(t, err)

	assert.Equal(t, 6, rng.Count())
	assert.True(t, rng.Contains(20))
	assert.True(t, rng.Contains(25))
	assert.False(t, rng.Contains(26))
}

func TestPortRangePortsRestartable(t *testing.T) {
	rng, err := NewPortRange(10, 12)
	require.NoError(t, err)

	first := rng.Ports()
	second := rng.Ports()

	assert.Equal(t, []int{10, 11, 12}, first)
	assert.Equal(t, first, second)
}
