package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tungbeier/number-to-word/numwords"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithoutSystemEnv())
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, numwords.Unbounded, cfg.Speller.Limit)
	require.Equal(t, "minus", cfg.Speller.SignWord)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvMap(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"NUMWORDS_ADDR":          "127.0.0.1:9000",
		"NUMWORDS_READ_TIMEOUT":  "2s",
		"NUMWORDS_WRITE_TIMEOUT": "3s",
		"NUMWORDS_LIMIT":         "billion",
		"NUMWORDS_SIGN_WORD":     " negative ",
		"LOG_LEVEL":              "debug",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv())
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 3*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, numwords.BelowBillion, cfg.Speller.Limit)
	require.Equal(t, "negative", cfg.Speller.SignWord)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "numwords.yaml")
	content := `
server:
  addr: ":9090"
  read_timeout: 1s
  shutdown_timeout: 20s
speller:
  limit: quintillion
  sign_word: negative
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(
		WithFile(path),
		WithEnvMap(map[string]string{"NUMWORDS_ADDR": ":7070"}),
		WithoutSystemEnv(),
	)
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 20*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, numwords.BelowQuintillion, cfg.Speller.Limit)
	require.Equal(t, "negative", cfg.Speller.SignWord)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(WithFile(filepath.Join(t.TempDir(), "missing.yaml")), WithoutSystemEnv())
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.False(t, IsValidationError(err))
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := Load(WithFile(path), WithoutSystemEnv())
	require.Error(t, err)
	require.Contains(t, err.Error(), "config: parse")
}

func TestLoadValidationCollectsAllFields(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"NUMWORDS_ADDR":          " ",
		"NUMWORDS_READ_TIMEOUT":  "soon",
		"NUMWORDS_WRITE_TIMEOUT": "-1s",
		"NUMWORDS_LIMIT":         "googol",
		"LOG_LEVEL":              "loud",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv())
	require.Error(t, err)
	require.True(t, IsValidationError(err))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.ElementsMatch(t, []string{
		"Server.ReadTimeout",
		"Server.Addr",
		"Server.WriteTimeout",
		"Speller.Limit",
		"Log.Level",
	}, ve.Fields())
	require.Contains(t, err.Error(), "Speller.Limit")
}
