package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/ytget/media-downloader/internal/model"
)

// Coordinator runs at most one download at a time. Start is meant to be called
// from the UI thread.
type Coordinator struct {
	engine     Engine
	dispatcher Dispatcher
	options    Options
	logger     zerolog.Logger

	mu          sync.Mutex
	presenter   Presenter
	running     bool
	last        *model.DownloadTask
	lastPercent string
	wg          sync.WaitGroup
}

// NewCoordinator creates a coordinator using engine with base options opts.
func NewCoordinator(engine Engine, dispatcher Dispatcher, opts Options, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		engine:     engine,
		dispatcher: dispatcher,
		options:    opts,
		logger:     logger,
	}
}

// SetPresenter sets the receiver of lifecycle callbacks
func (c *Coordinator) SetPresenter(p Presenter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.presenter = p
}

// Running reports whether a download is in flight. It turns false only once
// the reset callback has run on the UI thread.
func (c *Coordinator) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// LastTask returns a copy of the most recent attempt
func (c *Coordinator) LastTask() (model.DownloadTask, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return model.DownloadTask{}, false
	}
	return *c.last, true
}

// Start validates req, claims the download slot and launches the worker. It
// returns immediately.
func (c *Coordinator) Start(req model.DownloadRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}
	task := model.NewDownloadTask(req)
	c.running = true
	c.last = task
	c.lastPercent = ""
	presenter := c.presenter
	snapshot := *task
	c.mu.Unlock()

	c.logger.Info().Str("task", task.ID).Str("url", req.URL).Str("platform", req.Platform.String()).
		Msg("download started")

	if presenter != nil {
		presenter.OnStarted(snapshot)
	}

	opts := c.options.ForDirectory(req.DestinationDir)
	c.wg.Add(1)
	go c.run(task, opts)

	return nil
}

// Wait blocks until the current worker goroutine has exited. Callbacks it
// dispatched may still be queued on the UI thread.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// run is the worker goroutine body. The deferred reset is queued after the
// terminal event on every path, including a panicking engine.
func (c *Coordinator) run(task *model.DownloadTask, opts Options) {
	defer c.wg.Done()
	defer c.dispatch(c.reset)

	c.setStatus(task, model.TaskStatusDownloading)

	result, err := c.execute(task, opts, func(ev model.ProgressEvent) {
		switch ev.Kind {
		case model.EventDownloading:
			c.progress(task, ev)
		case model.EventError:
			c.noteError(task, ev.Message)
		case model.EventFinished:
			c.logger.Debug().Str("task", task.ID).Str("file", ev.Filename).Msg("engine reported finished")
		}
	})

	if err == nil {
		c.mu.Lock()
		reported := task.LastError
		c.mu.Unlock()
		if reported != "" {
			err = &EngineError{Message: reported}
		}
	}
	if err != nil {
		c.fail(task, AsEngineError(err))
		return
	}
	c.complete(task, result)
}

// execute calls the engine, converting a panic into an error.
func (c *Coordinator) execute(task *model.DownloadTask, opts Options, onProgress ProgressFunc) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Str("task", task.ID).Interface("panic", r).Msg("engine panicked")
			result, err = nil, panicError(r)
		}
	}()
	return c.engine.Download(context.Background(), task.Request.URL, opts, onProgress)
}

// progress forwards a Downloading event unless it repeats the last shown
// percentage.
func (c *Coordinator) progress(task *model.DownloadTask, ev model.ProgressEvent) {
	c.mu.Lock()
	if ev.PercentText == c.lastPercent {
		c.mu.Unlock()
		return
	}
	c.lastPercent = ev.PercentText
	task.Progress = ev.Fraction
	presenter := c.presenter
	c.mu.Unlock()

	c.logger.Debug().Str("task", task.ID).Str("percent", ev.PercentText).Msg("progress")

	if presenter != nil {
		c.dispatch(func() { presenter.OnProgress(ev) })
	}
}

func (c *Coordinator) complete(task *model.DownloadTask, result *Result) {
	c.mu.Lock()
	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.FinishedAt = time.Now()
	if result != nil {
		task.OutputPath = result.OutputPath
		task.Title = result.Title
		task.FileSize = result.FileSize
	}
	snapshot := *task
	presenter := c.presenter
	c.mu.Unlock()

	c.logger.Info().Str("task", task.ID).Str("file", snapshot.OutputPath).
		Str("size", humanize.Bytes(uint64(max(snapshot.FileSize, 0)))).
		Dur("took", snapshot.Duration()).Msg("download finished")

	if presenter != nil {
		c.dispatch(func() { presenter.OnFinished(snapshot) })
	}
}

func (c *Coordinator) fail(task *model.DownloadTask, err *EngineError) {
	c.mu.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Message
	task.FinishedAt = time.Now()
	snapshot := *task
	presenter := c.presenter
	c.mu.Unlock()

	c.logger.Error().Str("task", task.ID).Err(err).Msg("download failed")

	if presenter != nil {
		c.dispatch(func() { presenter.OnFailed(snapshot, err.Message) })
	}
}

// reset runs on the UI thread after the terminal event. It frees the slot
// before the presenter re-enables the trigger.
func (c *Coordinator) reset() {
	c.mu.Lock()
	c.running = false
	presenter := c.presenter
	c.mu.Unlock()

	if presenter != nil {
		presenter.OnReset()
	}
}

// noteError keeps the first error the engine reported through its callback.
// The engine usually also returns an error, which takes precedence.
func (c *Coordinator) noteError(task *model.DownloadTask, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if task.LastError == "" {
		task.LastError = message
	}
}

func (c *Coordinator) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	task.Status = status
}

// dispatch hands fn to the UI thread. Without a dispatcher fn runs inline.
func (c *Coordinator) dispatch(fn func()) {
	if c.dispatcher == nil {
		fn()
		return
	}
	c.dispatcher.Do(fn)
}
