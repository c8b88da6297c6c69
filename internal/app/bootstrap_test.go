package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestConfig(t *testing.T, content string) (*Config, *bytes.Buffer) {
	t.Helper()
	cfg := NewConfig(true, false)
	cfg.ConfigPath = writeConfig(t, content)
	var out bytes.Buffer
	cfg.Stdout = &out
	cfg.Stderr = &bytes.Buffer{}
	t.Cleanup(func() { _ = i18n.Init("") })
	return cfg, &out
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, true)
	assert.True(t, cfg.NoTUI)
	assert.True(t, cfg.Debug)
	assert.Equal(t, os.Stdout, cfg.Stdout)
	assert.Nil(t, cfg.DemoConfig)
}

func TestNewApplication_AppliesOverrides(t *testing.T) {
	cfg, _ := newTestConfig(t, "screen: backdrop\n")
	cfg.Screen = config.ScreenScaffold
	cfg.Locale = "es"
	cfg.NoMouse = true

	_, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NotNil(t, cfg.DemoConfig)
	assert.Equal(t, config.ScreenScaffold, cfg.DemoConfig.Screen)
	assert.Equal(t, "es", cfg.DemoConfig.GlobalSettings.Locale)
	assert.False(t, cfg.DemoConfig.GlobalSettings.MouseEnabled())
}

func TestNewApplication_WarnsAboutUntranslatedLocale(t *testing.T) {
	cfg, _ := newTestConfig(t, "title: Demo\n")
	var logs bytes.Buffer
	cfg.Stderr = &logs
	cfg.Locale = "de"

	_, err := NewApplication(cfg)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "No translations for locale de")

	logs.Reset()
	cfg.Locale = "es-MX"
	_, err = NewApplication(cfg)
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "No translations")
}

func TestNewApplication_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := NewConfig(true, false)
		cfg.Stderr = &bytes.Buffer{}
		cfg.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := NewApplication(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})

	t.Run("invalid screen override", func(t *testing.T) {
		cfg, _ := newTestConfig(t, "title: Demo\n")
		cfg.Screen = "gallery"
		_, err := NewApplication(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrUnknownScreen)
	})

	t.Run("invalid locale", func(t *testing.T) {
		cfg, _ := newTestConfig(t, "title: Demo\n")
		cfg.Locale = "not a locale!"
		_, err := NewApplication(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "translations")
	})
}

func TestRun_CLIModeReplaysEvents(t *testing.T) {
	cfg, out := newTestConfig(t, "screen: backdrop\nmenuItems: [Alpha, Beta]\n")
	cfg.EventsPath = writeConfig(t, "open\nselect:Beta\n")

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, application.Run(context.Background()))

	assert.Equal(t,
		"selection=\"Alpha\" layer=Concealed\n"+
			"open -> selection=\"Alpha\" layer=Revealed\n"+
			"select:Beta -> selection=\"Beta\" layer=Concealed\n",
		out.String())
}

func TestRun_CLIModeReadsStdin(t *testing.T) {
	cfg, out := newTestConfig(t, "screen: scaffold\n")
	cfg.EventsPath = "-"
	cfg.Stdin = bytes.NewBufferString("select:Item 2\n")

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, application.Run(context.Background()))
	assert.Contains(t, out.String(), `select:Item 2 -> selection="Item 2" drawer=Closed`)
}

func TestRun_CLIModeWithoutEventsPrintsState(t *testing.T) {
	cfg, out := newTestConfig(t, "screen: scaffold\n")

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, application.Run(context.Background()))
	assert.Equal(t, "selection=\"Item 1\" drawer=Closed\n", out.String())
}

func TestRun_CLIModeMissingEventsFile(t *testing.T) {
	cfg, _ := newTestConfig(t, "screen: scaffold\n")
	cfg.EventsPath = filepath.Join(t.TempDir(), "nope.txt")

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	err = application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open events file")
}
