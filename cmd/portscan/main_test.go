package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortRange(t *testing.T) {
	tests := []struct {
		in        string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{in: "1-1024", wantStart: 1, wantEnd: 1024},
		{in: "80", wantStart: 80, wantEnd: 80},
		{in: "20 - 100", wantStart: 20, wantEnd: 100},
		{in: "abc", wantErr: true},
		{in: "1-abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			start, end, err := parsePortRange(tt.in)

			if tt.wantErr {
				require.ErrorIs(t, err, errBadPortRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
