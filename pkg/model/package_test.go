package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Spec
	}{
		{
			name:     "bare name",
			raw:      "coffee-script",
			expected: Spec{Name: "coffee-script"},
		},
		{
			name:     "name with version",
			raw:      "coffee-script@1.0.1",
			expected: Spec{Name: "coffee-script", Version: "1.0.1"},
		},
		{
			name:     "name is lower-cased",
			raw:      "Coffee-Script@1.0.1",
			expected: Spec{Name: "coffee-script", Version: "1.0.1"},
		},
		{
			name:     "surrounding whitespace on name is trimmed",
			raw:      "  pm2  @5.3.0",
			expected: Spec{Name: "pm2", Version: "5.3.0"},
		},
		{
			name:     "only the first @ splits",
			raw:      "pkg@1.0.0-beta@weird",
			expected: Spec{Name: "pkg", Version: "1.0.0-beta@weird"},
		},
		{
			name:     "npm dist-tag as version",
			raw:      "typescript@latest",
			expected: Spec{Name: "typescript", Version: "latest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSpec(tt.raw))
		})
	}
}

func TestSpec_String(t *testing.T) {
	assert.Equal(t, "pm2", Spec{Name: "pm2"}.String())
	assert.Equal(t, "pm2@5.3.0", Spec{Name: "pm2", Version: "5.3.0"}.String())
}

func TestSpec_SatisfiedBy(t *testing.T) {
	tests := []struct {
		name      string
		spec      Spec
		info      PackageInfo
		satisfied bool
	}{
		{
			name:      "no pin accepts any version",
			spec:      Spec{Name: "pm2"},
			info:      PackageInfo{Version: "5.3.0"},
			satisfied: true,
		},
		{
			name:      "pin matches exactly",
			spec:      Spec{Name: "pm2", Version: "5.3.0"},
			info:      PackageInfo{Version: "5.3.0"},
			satisfied: true,
		},
		{
			name:      "pin mismatch",
			spec:      Spec{Name: "pm2", Version: "5.3.0"},
			info:      PackageInfo{Version: "5.3.1"},
			satisfied: false,
		},
		{
			name: "comparison is exact string equality, not semver",
			spec: Spec{Name: "pm2", Version: "5.3"},
			// semver-equal but not string-equal
			info:      PackageInfo{Version: "5.3.0"},
			satisfied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.satisfied, tt.spec.SatisfiedBy(tt.info))
		})
	}
}
