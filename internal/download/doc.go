package download

// Package download runs one media download at a time on a background goroutine.
// The heavy lifting is delegated to an extraction Engine (yt-dlp via
// github.com/lrstanley/go-ytdlp); the Coordinator enforces the single-flight
// policy and hands every progress and terminal event to the UI thread through a
// Dispatcher, finishing each attempt with exactly one reset.
