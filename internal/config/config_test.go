package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromPreferences(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetDownloadDirectory("/srv/videos")
	settings.SetFFmpegPath("/opt/ffmpeg")
	settings.SetLanguage("es")

	cfg, err := Load(settings)
	require.NoError(t, err)

	assert.Equal(t, "/srv/videos", cfg.DownloadDir)
	assert.Equal(t, "/opt/ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "es", cfg.Language)
	assert.False(t, cfg.Debug)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetDownloadDirectory("/srv/videos")

	t.Setenv("MEDIADL_DOWNLOAD_DIR", "/mnt/media")
	t.Setenv("MEDIADL_FFMPEG_PATH", "/usr/local/bin/ffmpeg")
	t.Setenv("MEDIADL_YTDLP_PATH", "/usr/local/bin/yt-dlp")
	t.Setenv("MEDIADL_DEBUG", "true")

	cfg, err := Load(settings)
	require.NoError(t, err)

	assert.Equal(t, "/mnt/media", cfg.DownloadDir)
	assert.Equal(t, "/usr/local/bin/ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "/usr/local/bin/yt-dlp", cfg.YTDLPPath)
	assert.True(t, cfg.Debug)
}

func TestLoad_ResolvesMuxerWhenUnset(t *testing.T) {
	settings := NewSettings(test.NewApp())

	cfg, err := Load(settings)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.FFmpegPath)
	assert.NotEmpty(t, cfg.DownloadDir)
}

func TestLoad_UnknownLanguageFallsBack(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetLanguage("klingon")

	cfg, err := Load(settings)
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, cfg.Language)
}
