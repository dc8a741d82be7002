package model

// Package model defines domain data structures used across the app: platforms,
// download requests, progress events, the UI state enum and the per-attempt
// download task record. Structures are plain values that move between the
// worker goroutine and the UI thread by copy.
