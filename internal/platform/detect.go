package platform

import (
	"net/url"
	"strings"

	"github.com/ytget/media-downloader/internal/model"
)

// Known hosts per platform; subdomains match too.
var platformHosts = map[model.Platform][]string{
	model.PlatformYouTube:   {"youtube.com", "youtu.be", "youtube-nocookie.com"},
	model.PlatformTikTok:    {"tiktok.com"},
	model.PlatformInstagram: {"instagram.com", "instagr.am"},
}

// DetectPlatform guesses the platform of rawURL from its host. The result is
// advisory: the engine decides what it can fetch.
func DetectPlatform(rawURL string) (model.Platform, bool) {
	raw := strings.TrimSpace(rawURL)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", false
	}

	for _, p := range model.Platforms() {
		for _, known := range platformHosts[p] {
			if host == known || strings.HasSuffix(host, "."+known) {
				return p, true
			}
		}
	}
	return "", false
}
