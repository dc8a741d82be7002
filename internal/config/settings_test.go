package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/media-downloader/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestToolOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFFmpegPath() != "" || settings.GetYTDLPPath() != "" {
		t.Error("Tool overrides should be empty by default")
	}

	settings.SetFFmpegPath("/opt/ffmpeg/bin/ffmpeg")
	settings.SetYTDLPPath("/opt/yt-dlp")

	if got := settings.GetFFmpegPath(); got != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Expected ffmpeg override, got %s", got)
	}
	if got := settings.GetYTDLPPath(); got != "/opt/yt-dlp" {
		t.Errorf("Expected yt-dlp override, got %s", got)
	}
}

func TestLastPlatform(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if _, ok := settings.GetLastPlatform(); ok {
		t.Error("No platform should be remembered initially")
	}

	settings.SetLastPlatform(model.PlatformInstagram)

	p, ok := settings.GetLastPlatform()
	if !ok || p != model.PlatformInstagram {
		t.Errorf("Expected instagram, got %s (ok=%v)", p, ok)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected default auto reveal %v", DefaultAutoRevealComplete)
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be enabled")
	}
}
