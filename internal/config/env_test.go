package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads interviewer and keys from env file", func(t *testing.T) {
		t.Setenv("INTERVIEWER", "")
		t.Setenv("GEMINI_API_KEYS", "")
		cfg := Default()
		cfg.EnvFile = writeEnvFile(t, "INTERVIEWER='Jane Interviewer'\nGEMINI_API_KEYS=k1, k2,,\n")

		require.NoError(t, cfg.LoadEnv())

		assert.Equal(t, "Jane Interviewer", cfg.Interviewer)
		assert.Equal(t, []string{"k1", "k2"}, cfg.Gemini.APIKeys)
	})

	t.Run("environment wins over env file", func(t *testing.T) {
		t.Setenv("INTERVIEWER", "From Environment")
		cfg := Default()
		cfg.EnvFile = writeEnvFile(t, "INTERVIEWER=From File\n")

		require.NoError(t, cfg.LoadEnv())

		assert.Equal(t, "From Environment", cfg.Interviewer)
	})

	t.Run("env file wins over yaml", func(t *testing.T) {
		t.Setenv("INTERVIEWER", "")
		cfg := Default()
		cfg.Interviewer = "From YAML"
		cfg.EnvFile = writeEnvFile(t, "INTERVIEWER=\"From File\"\n")

		require.NoError(t, cfg.LoadEnv())

		assert.Equal(t, "From File", cfg.Interviewer)
	})

	t.Run("surrounding whitespace is trimmed from the interviewer", func(t *testing.T) {
		t.Setenv("INTERVIEWER", "")
		cfg := Default()
		cfg.EnvFile = writeEnvFile(t, "INTERVIEWER=\"  Jane Interviewer \"\n")

		require.NoError(t, cfg.LoadEnv())

		assert.Equal(t, "Jane Interviewer", cfg.Interviewer)
	})

	t.Run("missing env file keeps yaml value", func(t *testing.T) {
		t.Setenv("INTERVIEWER", "")
		t.Setenv("GEMINI_API_KEYS", "")
		cfg := Default()
		cfg.Interviewer = "From YAML"
		cfg.EnvFile = filepath.Join(t.TempDir(), "missing.env")

		require.NoError(t, cfg.LoadEnv())

		assert.Equal(t, "From YAML", cfg.Interviewer)
		assert.Empty(t, cfg.Gemini.APIKeys)
	})
}

func TestRequireInterviewer(t *testing.T) {
	cfg := Default()

	_, err := cfg.RequireInterviewer()
	assert.ErrorIs(t, err, ErrInterviewerNotSet)

	cfg.Interviewer = "Jane"
	name, err := cfg.RequireInterviewer()
	require.NoError(t, err)
	assert.Equal(t, "Jane", name)
}
