package declaration

import (
	"strings"
	"testing"

	"github.com/statekit/npmstate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromReader(t *testing.T) {
	input := `
installed:
  - name: coffee-script@1.0.1
    user: deploy
  - pkgs: [pm2, forever]
    dir: /srv/app
    registry: https://registry.example.com
    env:
      - NPM_CONFIG_LOGLEVEL=error
removed:
  - name: uglify-js
bootstrap:
  - dir: /srv/app
    user: deploy
`

	f, err := LoadFromReader(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, f.Installed, 2)
	assert.Equal(t, "coffee-script@1.0.1", f.Installed[0].Name)
	assert.Equal(t, "deploy", f.Installed[0].User)
	assert.Equal(t, []string{"pm2", "forever"}, f.Installed[1].Pkgs)
	assert.Equal(t, "/srv/app", f.Installed[1].Dir)
	assert.Equal(t, []string{"NPM_CONFIG_LOGLEVEL=error"}, f.Installed[1].Env)

	require.Len(t, f.Removed, 1)
	assert.Equal(t, "uglify-js", f.Removed[0].Name)

	require.Len(t, f.Bootstrap, 1)
	assert.Equal(t, "/srv/app", f.Bootstrap[0].Dir)
}

func TestLoadFromReader_ParseError(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("installed: [}"))
	assert.ErrorIs(t, err, errors.ErrDeclarationParse)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, errors.ErrEmptyDeclarationPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr string
	}{
		{
			name: "valid file",
			file: File{
				Installed: []Install{{Name: "pm2"}},
				Removed:   []Removal{{Name: "uglify-js"}},
				Bootstrap: []Bootstrap{{Dir: "/srv/app"}},
			},
		},
		{
			name:    "installed entry without name or pkgs",
			file:    File{Installed: []Install{{Dir: "/srv/app"}}},
			wantErr: "installed[0]: name or pkgs required",
		},
		{
			name:    "env entry without equals sign",
			file:    File{Installed: []Install{{Name: "pm2", Env: []string{"LOGLEVEL"}}}},
			wantErr: `env entry "LOGLEVEL" is not KEY=VALUE`,
		},
		{
			name:    "env entry with empty key",
			file:    File{Installed: []Install{{Name: "pm2", Env: []string{"=error"}}}},
			wantErr: `env entry "=error" is not KEY=VALUE`,
		},
		{
			name:    "removed entry without name",
			file:    File{Removed: []Removal{{Dir: "/srv/app"}}},
			wantErr: "removed[0]: name required",
		},
		{
			name:    "bootstrap entry without dir",
			file:    File{Bootstrap: []Bootstrap{{User: "deploy"}}},
			wantErr: "bootstrap[0]: dir required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrDeclarationValidate)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInstall_Specs(t *testing.T) {
	assert.Equal(t, []string{"pm2"}, Install{Name: "pm2"}.Specs())
	assert.Equal(t, []string{"pm2", "forever"}, Install{Name: "ignored", Pkgs: []string{"pm2", "forever"}}.Specs())
}

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		expected []string
	}{
		{
			name: "clean declaration",
			file: File{Installed: []Install{{Name: "pm2@5.3.0"}}},
		},
		{
			name: "unparseable pinned version",
			file: File{Installed: []Install{{Name: "typescript@latest"}}},
			expected: []string{
				`installed[0]: pinned version "latest" of "typescript" does not parse as a version`,
			},
		},
		{
			name: "unpinned packages are not flagged",
			file: File{Installed: []Install{{Pkgs: []string{"pm2", "forever"}}}},
		},
		{
			name: "package both installed and removed",
			file: File{
				Installed: []Install{{Name: "Coffee-Script"}},
				Removed:   []Removal{{Name: "coffee-script"}},
			},
			expected: []string{
				`removed[0]: package "coffee-script" is also declared installed`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.file.Lint())
		})
	}
}
