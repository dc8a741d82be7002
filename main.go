package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/logging"
	"github.com/ytget/media-downloader/internal/platform"
	"github.com/ytget/media-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.ytget.media-downloader"

func main() {
	logging.Init(false)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	cfg, err := config.Load(settings)
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}
	if cfg.Debug {
		logging.Init(true)
	}
	logger := logging.Component("main")
	logger.Info().Str("version", version).Str("dir", cfg.DownloadDir).Msg("media downloader starting")

	if err := platform.CreateDirectoryIfNotExists(cfg.DownloadDir); err != nil {
		logger.Error().Err(err).Str("dir", cfg.DownloadDir).Msg("failed to ensure downloads dir")
	}
	if !platform.MuxerAvailable(cfg.FFmpegPath) {
		logger.Warn().Str("ffmpeg", cfg.FFmpegPath).Msg("ffmpeg not found, downloads needing a merge will fail")
	}

	opts := download.NewOptions(cfg.DownloadDir, cfg.FFmpegPath).WithExecutable(cfg.YTDLPPath)
	engine := download.NewYTDLPEngine(download.DefaultProgressInterval, logging.Component("engine"))
	coordinator := download.NewCoordinator(engine, ui.FyneDispatcher{}, opts, logging.Component("coordinator"))

	texts := ui.NewLocalization()
	texts.SetLanguage(cfg.Language)

	window := myApp.NewWindow(texts.GetText(ui.KeyAppTitle))
	if icon, err := ui.LoadLogoResource(); err == nil {
		window.SetIcon(icon)
	}

	presenter := ui.NewPresenter(coordinator, texts, cfg.DownloadDir, logging.Component("presenter"))
	ui.NewRootUI(window, myApp, presenter, texts, settings, cfg.AutoReveal, logging.Component("ui"))

	window.ShowAndRun()
}
