package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{"match_limit": 5, "port": 9090, "verbose": true}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MatchLimit)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Taxonomy)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"match_limit": }`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"all set", Config{MatchLimit: 10, MaxTextLength: 5000, Port: 8080}, false},
		{"negative match limit", Config{MatchLimit: -1}, true},
		{"negative max text length", Config{MaxTextLength: -5}, true},
		{"port too large", Config{Port: 70000}, true},
		{"negative port", Config{Port: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_TaxonomyPath(t *testing.T) {
	missing := Config{Taxonomy: filepath.Join(t.TempDir(), "absent.json")}
	assert.Error(t, missing.Validate())

	path := writeConfigFile(t, `{}`)
	present := Config{Taxonomy: path}
	assert.NoError(t, present.Validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	got := cfg.ApplyDefaults()
	assert.Equal(t, DefaultMatchLimit, got.MatchLimit)
	assert.Equal(t, DefaultMaxTextLength, got.MaxTextLength)
	assert.Equal(t, DefaultPort, got.Port)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{MatchLimit: 3, MaxTextLength: 1000, Port: 9000, Debug: true}
	got := cfg.ApplyDefaults()
	assert.Equal(t, 3, got.MatchLimit)
	assert.Equal(t, 1000, got.MaxTextLength)
	assert.Equal(t, 9000, got.Port)
	assert.True(t, got.Debug)
}
