package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/ytget/media-downloader/internal/config"
	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	presenter    *Presenter
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger
	autoReveal   bool

	heading         *widget.Label
	platformButtons map[model.Platform]*widget.Button
	promptLabel     *widget.Label
	urlEntry        *widget.Entry
	downloadBtn     *widget.Button
	downloadSection *fyne.Container
	progressBar     *widget.ProgressBar
	statusLabel     *widget.Label
}

// NewRootUI builds the window content and attaches it to presenter.
func NewRootUI(window fyne.Window, app fyne.App, presenter *Presenter, localization *Localization,
	settings *config.Settings, autoReveal bool, logger zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:          window,
		app:             app,
		presenter:       presenter,
		settings:        settings,
		localization:    localization,
		logger:          logger,
		autoReveal:      autoReveal,
		platformButtons: make(map[model.Platform]*widget.Button),
	}

	presenter.SetCallbacks(ui.onPlatformChosen, ui.onDownloadCompleted)

	ui.setupUI()
	presenter.AttachView(ui)

	if last, ok := settings.GetLastPlatform(); ok {
		presenter.SelectPlatform(last)
	}
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	ui.heading = widget.NewLabel(ui.localization.GetText(KeyChoosePlatform))
	ui.heading.TextStyle = fyne.TextStyle{Bold: true}

	buttons := make([]fyne.CanvasObject, 0, len(model.Platforms()))
	for _, p := range model.Platforms() {
		btn := widget.NewButton(p.Label(), func() {
			ui.presenter.SelectPlatform(p)
		})
		ui.platformButtons[p] = btn
		buttons = append(buttons, btn)
	}
	platformRow := container.NewGridWithColumns(len(buttons), buttons...)

	ui.promptLabel = widget.NewLabel("")
	ui.promptLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLPlaceholder))
	ui.urlEntry.OnChanged = ui.presenter.SetURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.downloadSection = container.NewVBox(ui.promptLabel, ui.urlEntry, ui.downloadBtn)
	ui.downloadSection.Hide()

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	top := container.NewVBox(ui.header(), ui.heading, platformRow, ui.downloadSection)
	bottom := container.NewVBox(ui.progressBar, ui.statusLabel)

	ui.window.SetContent(container.NewPadded(container.NewBorder(top, bottom, nil, nil)))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// header shows the logo when it can be loaded.
func (ui *RootUI) header() fyne.CanvasObject {
	logo, err := LoadLogoResource()
	if err != nil {
		ui.logger.Debug().Err(err).Msg("logo not available")
		return container.NewHBox()
	}
	img := canvas.NewImageFromResource(logo)
	img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	img.FillMode = canvas.ImageFillContain
	return container.NewCenter(img)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	folderItem := fyne.NewMenuItem(ui.localization.GetText(KeyChooseFolder), ui.onChooseFolder)

	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyAutoReveal), nil)
	revealItem.Checked = ui.autoReveal
	revealItem.Action = func() {
		ui.autoReveal = !ui.autoReveal
		ui.settings.SetAutoRevealOnComplete(ui.autoReveal)
		ui.createMenu()
	}

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), folderItem, revealItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.heading.SetText(ui.localization.GetText(KeyChoosePlatform))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLPlaceholder))
	ui.presenter.Relabel()
	ui.createMenu()
}

func (ui *RootUI) onChooseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.logger.Error().Err(err).Msg("choose download folder")
			return
		}
		if uri == nil {
			return
		}
		dir := uri.Path()
		ui.settings.SetDownloadDirectory(dir)
		ui.presenter.SetDestination(dir)
		ui.logger.Info().Str("dir", dir).Msg("download directory changed")
	}, ui.window)
}

func (ui *RootUI) onDownloadClick() {
	if err := ui.presenter.Submit(); err != nil {
		ui.logger.Debug().Err(err).Msg("download not started")
	}
}

func (ui *RootUI) onPlatformChosen(p model.Platform) {
	ui.settings.SetLastPlatform(p)
	if detected, ok := platform.DetectPlatform(ui.urlEntry.Text); ok && detected != p {
		ui.logger.Debug().Str("chosen", p.String()).Str("detected", detected.String()).Msg("url does not match platform")
	}
}

// onDownloadCompleted sends a system notification and optionally reveals the
// file.
func (ui *RootUI) onDownloadCompleted(task model.DownloadTask) {
	content := task.GetDisplayTitle()
	if task.FileSize > 0 {
		content += MiddleDotSeparator + humanize.Bytes(uint64(task.FileSize))
	}
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: content,
	})

	if ui.autoReveal {
		ui.onRevealFile(task.OutputPath)
	}
}

func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" || strings.HasPrefix(filePath, "http") {
		ui.logger.Warn().Str("path", filePath).Msg("nothing to reveal")
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Error().Err(err).Str("path", filePath).Msg("reveal file")
		dialog.ShowError(ui.openFileError(err), ui.window)
	}
}

func (ui *RootUI) openFileError(err error) error {
	return fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err)
}

// Render implements View.
func (ui *RootUI) Render(vm ViewModel) {
	for p, btn := range ui.platformButtons {
		if p == vm.Platform {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}

	ui.promptLabel.SetText(vm.Prompt)
	if vm.SectionVisible {
		ui.downloadSection.Show()
	} else {
		ui.downloadSection.Hide()
	}

	if ui.urlEntry.Text != vm.URL {
		ui.urlEntry.SetText(vm.URL)
	}

	ui.downloadBtn.SetText(vm.TriggerLabel)
	if vm.TriggerEnabled {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}

	ui.progressBar.SetValue(vm.Progress)
	if vm.ProgressVisible {
		ui.progressBar.Show()
	} else {
		ui.progressBar.Hide()
	}

	ui.statusLabel.Importance = toneImportance(vm.Tone)
	ui.statusLabel.SetText(vm.Status)
}

func toneImportance(t Tone) widget.Importance {
	switch t {
	case ToneSuccess:
		return widget.SuccessImportance
	case ToneError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
