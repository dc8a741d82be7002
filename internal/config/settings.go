package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyYTDLPPath          = "ytdlp_path"
	KeyLastPlatform       = "last_platform"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	FallbackDownloadDir       = "/tmp/downloads"
)

// Settings manages persisted user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetFFmpegPath returns the user's ffmpeg override, empty when unset
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().String(KeyFFmpegPath)
}

// SetFFmpegPath sets the ffmpeg override
func (s *Settings) SetFFmpegPath(path string) {
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetYTDLPPath returns the user's yt-dlp override, empty when unset
func (s *Settings) GetYTDLPPath() string {
	return s.app.Preferences().String(KeyYTDLPPath)
}

// SetYTDLPPath sets the yt-dlp override
func (s *Settings) SetYTDLPPath(path string) {
	s.app.Preferences().SetString(KeyYTDLPPath, path)
}

// GetLastPlatform returns the platform chosen in the previous session
func (s *Settings) GetLastPlatform() (model.Platform, bool) {
	p, err := model.ParsePlatform(s.app.Preferences().String(KeyLastPlatform))
	if err != nil {
		return "", false
	}
	return p, true
}

// SetLastPlatform remembers the chosen platform
func (s *Settings) SetLastPlatform(p model.Platform) {
	s.app.Preferences().SetString(KeyLastPlatform, p.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal completed downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}
