package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceName(t *testing.T) {
	tests := []struct {
		port int
		want string
	}{
		{port: 22, want: "ssh"},
		{port: 80, want: "http"},
		{port: 443, want: "https"},
		{port: 5432, want: "postgresql"},
		{port: 49152, want: UnknownService},
		{port: 12345, want: UnknownService},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ServiceName(tt.port), "port %d", tt.port)
	}
}
