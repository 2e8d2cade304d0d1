package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", DevVersion},
		{"plain", "1.2.3", "1.2.3"},
		{"leading v", "v1.2.3", "1.2.3"},
		{"prerelease", "v0.4.0-rc.1", "0.4.0-rc.1"},
		{"coerced", "1.2", "1.2.0"},
		{"garbage", "not-a-version", DevVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.input))
		})
	}
}

func TestGetters(t *testing.T) {
	assert.Equal(t, DevVersion, GetVersion())
	assert.Equal(t, "unknown", GetGitCommit())
	assert.Equal(t, "unknown", GetBuildDate())
}
