package ui

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/model"
)

// ErrNoPlatform is returned by Submit before a platform has been chosen.
var ErrNoPlatform = errors.New("no platform selected")

// Tone is the color class of the status line.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneError
)

// ViewModel is everything the window shows. The presenter owns it and hands
// a copy to the View after every change.
type ViewModel struct {
	Platform        model.Platform
	Prompt          string
	SectionVisible  bool
	URL             string
	TriggerEnabled  bool
	TriggerLabel    string
	Progress        float64
	ProgressVisible bool
	Status          string
	Tone            Tone
}

// View renders a ViewModel.
type View interface {
	Render(vm ViewModel)
}

// Presenter is the presentation state machine. It implements
// download.Presenter, so every method must be called on the UI thread.
type Presenter struct {
	downloader download.Downloader
	texts      *Localization
	logger     zerolog.Logger
	destDir    string

	view  View
	state model.UIState
	vm    ViewModel

	onPlatformChosen func(model.Platform)
	onCompleted      func(model.DownloadTask)
}

// NewPresenter creates a presenter in the Idle state and registers it with
// the downloader.
func NewPresenter(downloader download.Downloader, texts *Localization, destDir string, logger zerolog.Logger) *Presenter {
	p := &Presenter{
		downloader: downloader,
		texts:      texts,
		logger:     logger,
		destDir:    destDir,
		state:      model.IdleState(),
	}
	p.vm = ViewModel{
		Prompt:       texts.GetText(KeyPastePrompt),
		TriggerLabel: texts.GetText(KeyDownload),
		Status:       texts.GetText(KeyWelcome),
	}
	downloader.SetPresenter(p)
	return p
}

// AttachView sets the view and renders the current state into it.
func (p *Presenter) AttachView(v View) {
	p.view = v
	p.render()
}

// SetCallbacks sets optional hooks for a platform choice and a completed download.
func (p *Presenter) SetCallbacks(onPlatformChosen func(model.Platform), onCompleted func(model.DownloadTask)) {
	p.onPlatformChosen = onPlatformChosen
	p.onCompleted = onCompleted
}

// SetDestination changes the directory used by the next request.
func (p *Presenter) SetDestination(dir string) {
	p.destDir = dir
}

// State returns the current presentation state.
func (p *Presenter) State() model.UIState {
	return p.state
}

// ViewModel returns a copy of what is currently shown.
func (p *Presenter) ViewModel() ViewModel {
	return p.vm
}

// SelectPlatform moves to PlatformChosen. It is ignored while a download is
// in flight.
func (p *Presenter) SelectPlatform(platform model.Platform) {
	if !platform.IsValid() {
		return
	}
	switch p.state.Kind {
	case model.StateIdle, model.StatePlatformChosen:
	default:
		p.logger.Debug().Str("state", p.state.String()).Msg("platform change ignored")
		return
	}

	p.state = model.UIState{Kind: model.StatePlatformChosen, Platform: platform}
	p.vm.Platform = platform
	p.vm.Prompt = p.texts.Format(KeyPastePromptFor, platform.Label())
	p.vm.SectionVisible = true
	p.vm.ProgressVisible = true
	p.vm.TriggerEnabled = true
	p.vm.TriggerLabel = p.texts.GetText(KeyDownload)
	p.setStatus(p.texts.Format(KeyPlatformSelected, platform.Label()), ToneNeutral)
	p.render()

	if p.onPlatformChosen != nil {
		p.onPlatformChosen(platform)
	}
}

// SetURL records the text of the URL entry. It does not re-render.
func (p *Presenter) SetURL(text string) {
	p.vm.URL = text
}

// Submit asks the downloader to start with the current URL. An empty URL
// shows a validation error and leaves the state unchanged.
func (p *Presenter) Submit() error {
	switch p.state.Kind {
	case model.StatePlatformChosen:
	case model.StateIdle:
		return ErrNoPlatform
	default:
		return download.ErrAlreadyRunning
	}

	req, err := model.NewDownloadRequest(p.vm.URL, p.destDir, p.state.Platform)
	if err != nil {
		err = fmt.Errorf("%w: %w", download.ErrValidation, err)
	} else {
		err = p.downloader.Start(req)
	}
	switch {
	case err == nil:
	case errors.Is(err, download.ErrValidation):
		p.setStatus(p.texts.Format(KeyErrorPrefix, p.texts.GetText(KeyPleaseEnterURL)), ToneError)
		p.render()
	case errors.Is(err, download.ErrAlreadyRunning):
		p.logger.Warn().Msg("download already in progress")
	default:
		p.logger.Error().Err(err).Msg("start download")
	}
	return err
}

// OnStarted implements download.Presenter.
func (p *Presenter) OnStarted(task model.DownloadTask) {
	p.state = model.UIState{Kind: model.StateDownloading, Platform: p.state.Platform}
	p.vm.TriggerEnabled = false
	p.vm.TriggerLabel = p.texts.GetText(KeyDownloading)
	p.vm.Progress = 0
	p.vm.ProgressVisible = true
	p.setStatus(p.texts.GetText(KeyStarting), ToneNeutral)
	p.render()
}

// OnProgress implements download.Presenter.
func (p *Presenter) OnProgress(ev model.ProgressEvent) {
	if p.state.Kind != model.StateDownloading || ev.Kind != model.EventDownloading {
		return
	}
	p.vm.Progress = ev.Fraction
	p.setStatus(p.texts.Format(KeyProgress, ev.PercentText), ToneNeutral)
	p.render()
}

// OnFinished implements download.Presenter.
func (p *Presenter) OnFinished(task model.DownloadTask) {
	p.state = model.UIState{Kind: model.StateCompleted, Platform: p.state.Platform}
	p.vm.Progress = 1
	p.setStatus(p.texts.GetText(KeyDownloadCompleted), ToneSuccess)
	p.render()

	if p.onCompleted != nil {
		p.onCompleted(task)
	}
}

// OnFailed implements download.Presenter.
func (p *Presenter) OnFailed(task model.DownloadTask, message string) {
	p.state = model.UIState{Kind: model.StateFailed, Platform: p.state.Platform, Message: message}
	p.setStatus(p.texts.Format(KeyErrorPrefix, message), ToneError)
	p.render()
}

// OnReset implements download.Presenter. The status line keeps the outcome.
func (p *Presenter) OnReset() {
	p.state = model.UIState{Kind: model.StatePlatformChosen, Platform: p.state.Platform}
	p.vm.TriggerEnabled = true
	p.vm.TriggerLabel = p.texts.GetText(KeyDownload)
	p.vm.URL = ""
	p.render()
}

// Relabel re-renders the static texts after a language change.
func (p *Presenter) Relabel() {
	p.vm.TriggerLabel = p.texts.GetText(KeyDownload)
	if p.state.Kind == model.StateDownloading {
		p.vm.TriggerLabel = p.texts.GetText(KeyDownloading)
	}
	switch p.state.Kind {
	case model.StateIdle:
		p.vm.Prompt = p.texts.GetText(KeyPastePrompt)
		p.setStatus(p.texts.GetText(KeyWelcome), ToneNeutral)
	case model.StatePlatformChosen:
		p.vm.Prompt = p.texts.Format(KeyPastePromptFor, p.state.Platform.Label())
		// A neutral status here is the selection notice; outcomes of a
		// finished download carry their own tone and stay as they are.
		if p.vm.Tone == ToneNeutral {
			p.setStatus(p.texts.Format(KeyPlatformSelected, p.state.Platform.Label()), ToneNeutral)
		}
	default:
		p.vm.Prompt = p.texts.Format(KeyPastePromptFor, p.state.Platform.Label())
	}
	p.render()
}

func (p *Presenter) setStatus(text string, tone Tone) {
	p.vm.Status = text
	p.vm.Tone = tone
}

func (p *Presenter) render() {
	if p.view != nil {
		p.view.Render(p.vm)
	}
}
