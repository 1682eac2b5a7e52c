package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDirectoryLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero falls back to default", limit: 0, want: defaultDirectoryLimit},
		{name: "negative falls back to default", limit: -3, want: defaultDirectoryLimit},
		{name: "in range passes through", limit: 25, want: 25},
		{name: "cap is inclusive", limit: maxDirectoryLimit, want: maxDirectoryLimit},
		{name: "oversized is capped", limit: 10000, want: maxDirectoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampDirectoryLimit(tt.limit))
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%cacao%", containsPattern("cacao"))
	// Empty search never reaches the pattern, but the helper stays total.
	assert.Equal(t, "%%", containsPattern(""))
}
