package download

import (
	"github.com/ytget/media-downloader/internal/model"
)

// Downloader defines the interface for the download coordinator.
type Downloader interface {
	// SetPresenter sets the receiver of UI-thread callbacks
	SetPresenter(Presenter)

	// Start validates req and launches it in the background
	Start(req model.DownloadRequest) error

	// Running reports whether a download occupies the single slot
	Running() bool

	// LastTask returns a copy of the most recent attempt
	LastTask() (model.DownloadTask, bool)
}

// Dispatcher queues fn to run on the UI thread. Callbacks must run in the
// order Do was called.
type Dispatcher interface {
	Do(fn func())
}

// Presenter receives download lifecycle callbacks. Every method is invoked on
// the UI thread: OnStarted synchronously from Start, the rest through the
// Dispatcher.
type Presenter interface {
	OnStarted(task model.DownloadTask)
	OnProgress(ev model.ProgressEvent)
	OnFinished(task model.DownloadTask)
	OnFailed(task model.DownloadTask, message string)
	OnReset()
}
