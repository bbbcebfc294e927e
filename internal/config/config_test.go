package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// applyFlags разбирает os.Args, поэтому на время теста аргументы подменяются
func stubArgs(t *testing.T, args ...string) {
	t.Helper()

	old := os.Args
	os.Args = append([]string{"tiktok_saver"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestReadFileDurationForms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, `
Application:
  MetadataTimeout: 5s
  MediaTimeout: 45
  SweepMaxAge: 1.5
`)

	var c Config
	require.NoError(t, readFile(&c, path))

	require.Equal(t, 5*time.Second, time.Duration(c.Application.MetadataTimeout))
	require.Equal(t, 45*time.Second, time.Duration(c.Application.MediaTimeout))
	require.Equal(t, 1500*time.Millisecond, time.Duration(c.Application.SweepMaxAge))
}

func TestReadFileDurationQuotedNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, `
Application:
  MetadataTimeout: "90"
`)

	var c Config
	require.NoError(t, readFile(&c, path))
	require.Equal(t, 90*time.Second, time.Duration(c.Application.MetadataTimeout))
}

func TestReadFileDurationGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, `
Application:
  MetadataTimeout: soon
`)

	var c Config
	require.Error(t, readFile(&c, path))
}

func TestReadFileMissing(t *testing.T) {
	var c Config
	require.Error(t, readFile(&c, filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestSetDefaults(t *testing.T) {
	var c Config
	setDefaults(&c)

	a := c.Application
	require.Equal(t, 3000, a.Port)
	require.Equal(t, "downloads", a.DownloadsDir)
	require.Equal(t, "public", a.PublicDir)
	require.Equal(t, 10*time.Second, time.Duration(a.MetadataTimeout))
	require.Equal(t, 30*time.Second, time.Duration(a.MediaTimeout))
	require.Equal(t, 24*time.Hour, time.Duration(a.SweepMaxAge))
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	c := Config{Application: Application{Port: 8080, DownloadsDir: "videos"}}
	setDefaults(&c)

	require.Equal(t, 8080, c.Application.Port)
	require.Equal(t, "videos", c.Application.DownloadsDir)
}

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	stubArgs(t)

	writeConfig(t, "config/config.yaml", `
Application:
  LogLevel: debug
  Port: 4000
  MetadataTimeout: 7s
`)

	var c Config
	require.NoError(t, LoadConfig(&c))

	require.Equal(t, "debug", c.Application.LogLevel)
	require.Equal(t, 4000, c.Application.Port)
	require.Equal(t, 7*time.Second, time.Duration(c.Application.MetadataTimeout))

	// незаполненные поля добиты дефолтами
	require.Equal(t, "downloads", c.Application.DownloadsDir)
	require.Equal(t, 30*time.Second, time.Duration(c.Application.MediaTimeout))
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	stubArgs(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_DOWNLOADS_DIR", "videos")

	writeConfig(t, "config/config.yaml", `
Application:
  Port: 4000
`)

	var c Config
	require.NoError(t, LoadConfig(&c))

	require.Equal(t, 8080, c.Application.Port)
	require.Equal(t, "videos", c.Application.DownloadsDir)
}

func TestLoadConfigFlagOverridesEverything(t *testing.T) {
	t.Chdir(t.TempDir())
	stubArgs(t, "--port", "9090")
	t.Setenv("APP_PORT", "8080")

	writeConfig(t, "config/config.yaml", `
Application:
  Port: 4000
`)

	var c Config
	require.NoError(t, LoadConfig(&c))

	require.Equal(t, 9090, c.Application.Port)
}

func TestLoadConfigDurationFlagsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	stubArgs(t, "--metadata-timeout", "3s")
	t.Setenv("APP_MEDIA_TIMEOUT", "90s")
	t.Setenv("APP_SWEEP_MAX_AGE", "1h")

	writeConfig(t, "config/config.yaml", `
Application:
  MetadataTimeout: 7s
  MediaTimeout: 45s
`)

	var c Config
	require.NoError(t, LoadConfig(&c))

	require.Equal(t, 3*time.Second, time.Duration(c.Application.MetadataTimeout))
	require.Equal(t, 90*time.Second, time.Duration(c.Application.MediaTimeout))
	require.Equal(t, time.Hour, time.Duration(c.Application.SweepMaxAge))
}

func TestLoadConfigDurationDefaultsSurviveFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	stubArgs(t)

	writeConfig(t, "config/config.yaml", `
Application:
  Port: 4000
`)

	var c Config
	require.NoError(t, LoadConfig(&c))

	require.Equal(t, 10*time.Second, time.Duration(c.Application.MetadataTimeout))
	require.Equal(t, 30*time.Second, time.Duration(c.Application.MediaTimeout))
	require.Equal(t, 24*time.Hour, time.Duration(c.Application.SweepMaxAge))
}

func TestLoadConfigEnvSelectsFile(t *testing.T) {
	t.Chdir(t.TempDir())
	stubArgs(t)
	t.Setenv("ENV", "dev")

	writeConfig(t, "config/config.dev.yaml", `
Application:
  Port: 5000
`)

	var c Config
	require.NoError(t, LoadConfig(&c))
	require.Equal(t, 5000, c.Application.Port)
}
