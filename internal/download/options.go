package download

import (
	"path/filepath"
)

// yt-dlp settings shared by every download
const (
	// FormatSelector prefers H.264 video with AAC audio in MP4, then any single
	// MP4, then whatever is best.
	FormatSelector = "bestvideo[ext=mp4][vcodec^=avc1]+bestaudio[ext=m4a]/best[ext=mp4]/best"

	// FilenameTemplate names the output after the platform-provided title.
	FilenameTemplate = "%(title)s.%(ext)s"
)

// Options is the immutable engine configuration for one download.
type Options struct {
	Format         string
	OutputTemplate string
	NoPlaylist     bool
	FFmpegLocation string
	YTDLPPath      string // empty means PATH lookup
}

// NewOptions builds the default options writing into dir.
func NewOptions(dir, ffmpegLocation string) Options {
	return Options{
		Format:         FormatSelector,
		OutputTemplate: filepath.Join(dir, FilenameTemplate),
		NoPlaylist:     true,
		FFmpegLocation: ffmpegLocation,
	}
}

// WithExecutable returns a copy using the given yt-dlp executable.
func (o Options) WithExecutable(path string) Options {
	o.YTDLPPath = path
	return o
}

// ForDirectory returns a copy writing into dir. An empty dir keeps the current
// output template.
func (o Options) ForDirectory(dir string) Options {
	if dir == "" {
		return o
	}
	o.OutputTemplate = filepath.Join(dir, FilenameTemplate)
	return o
}
