// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/url"
	"regexp"
)

var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(www\.)?youtube\.com/watch\?v=[\w-]+`),
	regexp.MustCompile(`^https?://youtu\.be/[\w-]+`),
	regexp.MustCompile(`^https?://(www\.)?youtube\.com/embed/[\w-]+`),
	regexp.MustCompile(`^https?://(www\.)?youtube\.com/shorts/[\w-]+`),
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{6,})`),
}

const embedURLFormat = "https://www.youtube.com/embed/%s?rel=0&modestbranding=1"

// ValidateURL reports whether raw is an absolute http or https URL with a host.
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// ValidateVideoURL reports whether raw is a YouTube watch, short-link,
// embed or shorts URL.
func ValidateVideoURL(raw string) bool {
	for _, p := range videoURLPatterns {
		if p.MatchString(raw) {
			return true
		}
	}
	return false
}

// ExtractVideoID returns the YouTube video id found in raw.
func ExtractVideoID(raw string) (string, bool) {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// EmbedURL returns the privacy-reduced embed player URL for a video id.
func EmbedURL(videoID string) string {
	return fmt.Sprintf(embedURLFormat, url.PathEscape(videoID))
}
