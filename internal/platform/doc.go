package platform

// Package platform contains OS integration: the downloads directory, locating
// the bundled ffmpeg muxer, advisory platform detection from URLs, and
// revealing finished files in the system file manager.
