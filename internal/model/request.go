package model

import (
	"errors"
	"strings"
)

// ErrEmptyURL is returned when a download is requested without a URL.
var ErrEmptyURL = errors.New("url is empty")

// DownloadRequest is what the user asked for when pressing the download button.
// It lives only for the duration of one download attempt.
type DownloadRequest struct {
	URL            string
	DestinationDir string
	Platform       Platform
}

// NewDownloadRequest builds a request from raw user input. Surrounding
// whitespace and line breaks are stripped from the URL.
func NewDownloadRequest(rawURL, destinationDir string, platform Platform) (DownloadRequest, error) {
	req := DownloadRequest{
		URL:            CleanURL(rawURL),
		DestinationDir: destinationDir,
		Platform:       platform,
	}
	if err := req.Validate(); err != nil {
		return DownloadRequest{}, err
	}
	return req, nil
}

// Validate checks the request invariants.
func (r DownloadRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrEmptyURL
	}
	return nil
}

// CleanURL removes characters pasted along with a URL that would break display
// or the engine invocation.
func CleanURL(raw string) string {
	cleaned := strings.ReplaceAll(raw, "\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.TrimSpace(cleaned)
}
