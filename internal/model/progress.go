package model

import "fmt"

// EventKind tags the ProgressEvent variant.
type EventKind int

const (
	// EventDownloading carries a known completion fraction.
	EventDownloading EventKind = iota

	// EventFinished means the engine wrote the output file.
	EventFinished

	// EventError means the engine gave up; Message holds the reason.
	EventError
)

// String returns the string representation of EventKind
func (k EventKind) String() string {
	switch k {
	case EventDownloading:
		return "downloading"
	case EventFinished:
		return "finished"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// ProgressEvent is produced by the extraction engine on the worker goroutine and
// consumed on the UI thread.
type ProgressEvent struct {
	Kind        EventKind
	Fraction    float64 // 0.0 to 1.0, Downloading only
	PercentText string  // e.g. "50.0%", Downloading only
	Filename    string  // Finished only, may be empty
	Message     string  // Error only
}

// DownloadingEvent returns a Downloading event for the given fraction, clamped
// to [0,1].
func DownloadingEvent(fraction float64) ProgressEvent {
	fraction = ClampFraction(fraction)
	return ProgressEvent{
		Kind:        EventDownloading,
		Fraction:    fraction,
		PercentText: FormatPercent(fraction),
	}
}

// FinishedEvent returns a Finished event.
func FinishedEvent(filename string) ProgressEvent {
	return ProgressEvent{Kind: EventFinished, Filename: filename}
}

// ErrorEvent returns an Error event carrying message.
func ErrorEvent(message string) ProgressEvent {
	return ProgressEvent{Kind: EventError, Message: message}
}

// ClampFraction limits f to [0,1].
func ClampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// FormatPercent renders a fraction as a percentage with one decimal place.
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", ClampFraction(fraction)*100)
}
