package model

import (
	"fmt"
	"strings"
)

// Platform is the media platform the user picked. It is advisory only: the
// extraction engine resolves the URL on its own.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
)

// Platforms returns the supported platforms in display order.
func Platforms() []Platform {
	return []Platform{PlatformYouTube, PlatformTikTok, PlatformInstagram}
}

// Label returns the human readable platform name.
func (p Platform) Label() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformTikTok:
		return "TikTok"
	case PlatformInstagram:
		return "Instagram"
	default:
		return string(p)
	}
}

// String returns the string representation of Platform
func (p Platform) String() string {
	return string(p)
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePlatform parses a platform key, case-insensitively.
func ParsePlatform(value string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(value)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown platform: %q", value)
	}
	return p, nil
}
