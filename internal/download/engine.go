package download

import (
	"context"

	"github.com/ytget/media-downloader/internal/model"
)

// ProgressFunc receives engine events on the worker goroutine.
type ProgressFunc func(model.ProgressEvent)

// Result describes the file the engine produced.
type Result struct {
	OutputPath string
	Title      string
	FileSize   int64
}

// Engine fetches url according to opts and writes one file. Download blocks
// until the engine is done and may call onProgress any number of times before
// returning.
type Engine interface {
	Download(ctx context.Context, url string, opts Options, onProgress ProgressFunc) (*Result, error)
}

// ProgressFromBytes computes a Downloading event from byte counters. estimate
// is used when total is unknown. ok is false when neither is known.
func ProgressFromBytes(downloaded, total, estimate int64) (ev model.ProgressEvent, ok bool) {
	if total <= 0 {
		total = estimate
	}
	if total <= 0 || downloaded < 0 {
		return model.ProgressEvent{}, false
	}
	return model.DownloadingEvent(float64(downloaded) / float64(total)), true
}
