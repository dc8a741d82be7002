package config

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ytget/media-downloader/internal/platform"
)

// EnvPrefix prefixes environment overrides, e.g. MEDIADL_DOWNLOAD_DIR.
const EnvPrefix = "MEDIADL"

// languages are the accepted values of the language setting. Anything else
// falls back to DefaultLanguage.
var languages = []string{DefaultLanguage, "es", "en"}

// Config is the runtime configuration resolved once at startup and shared by
// value afterwards.
type Config struct {
	DownloadDir string `mapstructure:"download_dir" validate:"required"`
	FFmpegPath  string `mapstructure:"ffmpeg_path" validate:"required"`
	YTDLPPath   string `mapstructure:"ytdlp_path"`
	Language    string `mapstructure:"language"`
	AutoReveal  bool   `mapstructure:"auto_reveal"`
	Debug       bool   `mapstructure:"debug"`
}

// Load merges environment overrides over the persisted settings, resolves the
// muxer location and validates the result.
func Load(settings *Settings) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("download_dir", settings.GetDownloadDirectory())
	v.SetDefault("ffmpeg_path", settings.GetFFmpegPath())
	v.SetDefault("ytdlp_path", settings.GetYTDLPPath())
	v.SetDefault("language", settings.GetLanguage())
	v.SetDefault("auto_reveal", settings.GetAutoRevealOnComplete())
	v.SetDefault("debug", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.FFmpegPath = platform.ResolveMuxerPath(cfg.FFmpegPath)
	if !slices.Contains(languages, cfg.Language) {
		cfg.Language = DefaultLanguage
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
