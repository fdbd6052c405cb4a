package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringStripsPrefix(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v1.4.0"
	assert.Equal(t, "1.4.0", String())

	Version = "2.0.1"
	assert.Equal(t, "2.0.1", String())
}

func TestIsNewer(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "1.2.0"

	tests := []struct {
		other string
		want  bool
	}{
		{"1.3.0", true},
		{"v2.0.0", true},
		{"1.2.0", false},
		{"1.1.9", false},
		{"", false},
		{"not-a-version", false},
	}
	for _, tt := range tests {
		t.Run(tt.other, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewer(tt.other))
		})
	}
}
