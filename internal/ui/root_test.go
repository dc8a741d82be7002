package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/model"
)

func newTestRootUI(t *testing.T, engine download.Engine) (*RootUI, *download.Coordinator, *queueDispatcher, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("")
	settings := config.NewSettings(app)
	queue := &queueDispatcher{}
	coord := download.NewCoordinator(engine, queue, download.NewOptions(t.TempDir(), ""), zerolog.Nop())
	texts := NewLocalization()
	presenter := NewPresenter(coord, texts, t.TempDir(), zerolog.Nop())

	return NewRootUI(window, app, presenter, texts, settings, false, zerolog.Nop()), coord, queue, settings
}

func TestRootUI_InitialRender(t *testing.T) {
	ui, _, _, _ := newTestRootUI(t, engineFunc(func(context.Context, string, download.Options, download.ProgressFunc) (*download.Result, error) {
		return &download.Result{}, nil
	}))

	assert.Equal(t, "Bienvenido. Selecciona una plataforma para comenzar.", ui.statusLabel.Text)
	assert.False(t, ui.downloadSection.Visible())
	assert.False(t, ui.progressBar.Visible())
	assert.Len(t, ui.platformButtons, 3)
}

func TestRootUI_DownloadFlow(t *testing.T) {
	ui, coord, queue, settings := newTestRootUI(t, engineFunc(func(_ context.Context, url string, _ download.Options, onProgress download.ProgressFunc) (*download.Result, error) {
		onProgress(model.DownloadingEvent(0.25))
		return &download.Result{Title: url}, nil
	}))

	test.Tap(ui.platformButtons[model.PlatformInstagram])

	assert.True(t, ui.downloadSection.Visible())
	assert.True(t, ui.progressBar.Visible())
	assert.Equal(t, "2. Pega la URL de Instagram aquí:", ui.promptLabel.Text)
	assert.Equal(t, widget.HighImportance, ui.platformButtons[model.PlatformInstagram].Importance)

	last, ok := settings.GetLastPlatform()
	require.True(t, ok)
	assert.Equal(t, model.PlatformInstagram, last)

	test.Type(ui.urlEntry, "https://www.instagram.com/reel/xyz/")
	test.Tap(ui.downloadBtn)

	assert.True(t, ui.downloadBtn.Disabled())
	assert.Equal(t, "Descargando...", ui.downloadBtn.Text)

	coord.Wait()
	queue.flush()

	assert.Equal(t, "¡Descarga completada con éxito!", ui.statusLabel.Text)
	assert.Equal(t, widget.SuccessImportance, ui.statusLabel.Importance)
	assert.False(t, ui.downloadBtn.Disabled())
	assert.Equal(t, "Descargar Video", ui.downloadBtn.Text)
	assert.Empty(t, ui.urlEntry.Text)
	assert.Equal(t, 1.0, ui.progressBar.Value)
}

func TestRootUI_EmptyURLShowsError(t *testing.T) {
	ui, coord, _, _ := newTestRootUI(t, engineFunc(func(context.Context, string, download.Options, download.ProgressFunc) (*download.Result, error) {
		t.Error("engine must not run")
		return nil, nil
	}))

	test.Tap(ui.platformButtons[model.PlatformYouTube])
	test.Tap(ui.downloadBtn)

	assert.Equal(t, "Error: Por favor, introduce una URL.", ui.statusLabel.Text)
	assert.Equal(t, widget.DangerImportance, ui.statusLabel.Importance)
	assert.False(t, ui.downloadBtn.Disabled())
	assert.False(t, coord.Running())
}

func TestRootUI_RestoresLastPlatform(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetLastPlatform(model.PlatformTikTok)

	coord := download.NewCoordinator(nil, &queueDispatcher{}, download.Options{}, zerolog.Nop())
	texts := NewLocalization()
	presenter := NewPresenter(coord, texts, "", zerolog.Nop())
	ui := NewRootUI(app.NewWindow(""), app, presenter, texts, settings, false, zerolog.Nop())

	assert.Equal(t, model.PlatformTikTok, presenter.State().Platform)
	assert.True(t, ui.downloadSection.Visible())
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, _, settings := newTestRootUI(t, engineFunc(func(context.Context, string, download.Options, download.ProgressFunc) (*download.Result, error) {
		return &download.Result{}, nil
	}))

	ui.onLanguageChange("en")

	assert.Equal(t, "en", settings.GetLanguage())
	assert.Equal(t, "1. Choose a platform:", ui.heading.Text)
	assert.Equal(t, "Download Video", ui.downloadBtn.Text)
	assert.Equal(t, "Welcome. Choose a platform to get started.", ui.statusLabel.Text)
}

func TestRootUI_OpenFileError(t *testing.T) {
	ui, _, _, _ := newTestRootUI(t, engineFunc(func(context.Context, string, download.Options, download.ProgressFunc) (*download.Result, error) {
		return &download.Result{}, nil
	}))
	cause := errors.New("exit status 1")

	err := ui.openFileError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error al abrir el archivo: exit status 1", err.Error())

	ui.onLanguageChange("en")
	assert.Equal(t, "Error opening file: exit status 1", ui.openFileError(cause).Error())
}

func TestToneImportance(t *testing.T) {
	assert.Equal(t, widget.MediumImportance, toneImportance(ToneNeutral))
	assert.Equal(t, widget.SuccessImportance, toneImportance(ToneSuccess))
	assert.Equal(t, widget.DangerImportance, toneImportance(ToneError))
}
