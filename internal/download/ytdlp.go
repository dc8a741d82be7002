package download

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/platform"
)

// DefaultProgressInterval is how often yt-dlp progress is sampled.
const DefaultProgressInterval = 250 * time.Millisecond

// yt-dlp prefixes fatal messages on stderr with this marker.
const ytdlpErrorPrefix = "ERROR:"

// finalPathTemplate makes yt-dlp print the file path once merging and moving
// are done. The progress filename at that point names a deleted stream part.
const finalPathTemplate = "after_move:filepath"

// YTDLPEngine downloads through the yt-dlp executable.
type YTDLPEngine struct {
	progressInterval time.Duration
	logger           zerolog.Logger
}

// NewYTDLPEngine creates an engine sampling progress every interval.
func NewYTDLPEngine(interval time.Duration, logger zerolog.Logger) *YTDLPEngine {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &YTDLPEngine{
		progressInterval: interval,
		logger:           logger,
	}
}

// Download runs yt-dlp for url and blocks until it exits.
func (e *YTDLPEngine) Download(ctx context.Context, url string, opts Options, onProgress ProgressFunc) (*Result, error) {
	dl := e.command(opts)

	var lastFile, title string
	dl.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
		if update.Info != nil && update.Info.Title != nil && title == "" {
			title = *update.Info.Title
		}
		if update.Filename != "" {
			lastFile = update.Filename
		}

		ev, ok := progressEvent(update.Status, int64(update.DownloadedBytes), int64(update.TotalBytes), update.Filename)
		if !ok {
			return
		}
		if onProgress != nil {
			onProgress(ev)
		}
	})

	e.logger.Debug().Str("url", url).Str("format", opts.Format).Str("output", opts.OutputTemplate).
		Str("ffmpeg", opts.FFmpegLocation).Msg("running yt-dlp")

	result, err := dl.Run(ctx, url)
	if err != nil {
		stderr := ""
		if result != nil {
			stderr = result.Stderr
		}
		return nil, &EngineError{Message: engineMessage(stderr, err), Cause: err}
	}

	out := &Result{
		OutputPath: outputPath(printedPath(result.Stdout), lastFile),
		Title:      title,
	}
	if out.OutputPath == "" {
		e.logger.Warn().Str("url", url).Str("last", lastFile).Msg("output file not found")
	} else if st, statErr := os.Stat(out.OutputPath); statErr == nil {
		out.FileSize = st.Size()
	}

	return out, nil
}

// command translates Options into a yt-dlp invocation.
func (e *YTDLPEngine) command(opts Options) *ytdlp.Command {
	dl := ytdlp.New().
		Format(opts.Format).
		Output(opts.OutputTemplate).
		Print(finalPathTemplate)

	if opts.NoPlaylist {
		dl = dl.NoPlaylist()
	}
	if opts.FFmpegLocation != "" {
		dl = dl.FFmpegLocation(opts.FFmpegLocation)
	}
	if opts.YTDLPPath != "" {
		dl = dl.SetExecutable(opts.YTDLPPath)
	}
	return dl
}

// printedPath returns the last non-empty stdout line.
func printedPath(stdout string) string {
	lines := strings.Split(strings.ReplaceAll(stdout, "\r\n", "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// outputPath picks the first candidate that exists on disk, following a
// stream part to the file it was merged into.
func outputPath(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if path, err := platform.FindMergedFile(candidate); err == nil {
			return path
		}
	}
	return ""
}

// progressEvent maps one yt-dlp progress sample onto a ProgressEvent.
func progressEvent(status ytdlp.ProgressStatus, downloaded, total int64, filename string) (model.ProgressEvent, bool) {
	switch status {
	case ytdlp.ProgressStatusDownloading:
		return ProgressFromBytes(downloaded, total, 0)
	case ytdlp.ProgressStatusFinished:
		return model.FinishedEvent(filename), true
	case ytdlp.ProgressStatusError:
		msg := "download failed"
		if filename != "" {
			msg += ": " + filename
		}
		return model.ErrorEvent(msg), true
	default:
		return model.ProgressEvent{}, false
	}
}

// engineMessage picks the human readable reason out of yt-dlp's stderr,
// falling back to the error text.
func engineMessage(stderr string, err error) string {
	lines := strings.Split(strings.ReplaceAll(stderr, "\r\n", "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, ytdlpErrorPrefix) {
			if msg := strings.TrimSpace(strings.TrimPrefix(line, ytdlpErrorPrefix)); msg != "" {
				return msg
			}
		}
	}
	if err == nil {
		return "unknown error"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "download timed out"
	}
	return err.Error()
}
