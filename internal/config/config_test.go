package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebot/search"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("", "", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, search.ModeDepth, cfg.SearchMode())
}

func TestLoad_Layers(t *testing.T) {
	yml := writeFile(t, "mazebot.yaml", `
base_url: http://localhost:9000
login: octocat
mode: shortest
timeout: 5s
max_mazes: 3
log_format: json
verify: false
`)
	env := writeFile(t, ".env", "MAZEBOT_LOGIN=from-dotenv\nMAZEBOT_LISTEN=:9999\nMAZEBOT_MODE=breadth\n")

	cfg, err := load(yml, env, envMap(map[string]string{
		"MAZEBOT_MODE":      "depth",
		"MAZEBOT_MAX_MAZES": "7",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, "from-dotenv", cfg.Login, ".env overrides yaml")
	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, "depth", cfg.Mode, "environment overrides .env")
	assert.Equal(t, 7, cfg.MaxMazes)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.Verify)
	assert.Equal(t, "mazebot.checkpoint", cfg.Checkpoint, "untouched default")
}

func TestLoad_MissingEnvFileIsFine(t *testing.T) {
	_, err := load("", filepath.Join(t.TempDir(), "absent.env"), noEnv)
	assert.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "absent.yaml"), "", noEnv)
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "timeout: [")
	_, err = load(bad, "", noEnv)
	assert.Error(t, err)

	cases := map[string]string{
		"MAZEBOT_TIMEOUT":    "soon",
		"MAZEBOT_MAX_MAZES":  "many",
		"MAZEBOT_VERIFY":     "perhaps",
		"MAZEBOT_MODE":       "astar",
		"MAZEBOT_BASE_URL":   "not a url",
		"MAZEBOT_LOG_LEVEL":  "loud",
		"MAZEBOT_LOG_FORMAT": "xml",
		"MAZEBOT_CHECKPOINT": " ",
	}
	for key, val := range cases {
		_, err := load("", "", envMap(map[string]string{key: val}))
		assert.ErrorIs(t, err, ErrInvalidConfig, key)
	}

	_, err = load("", "", envMap(map[string]string{"MAZEBOT_TIMEOUT": "-1s"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = load("", "", envMap(map[string]string{"MAZEBOT_MAX_MAZES": "-2"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
