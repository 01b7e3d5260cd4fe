// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GameDetailsResponse is a game together with the cheats referencing it.
type GameDetailsResponse struct {
	Game   Game    `json:"game"`
	Cheats []Cheat `json:"cheats"`
}

// SettingsResponse exposes the site settings to the web front end.
// EmbedURL is set only when the stored video link is a recognised YouTube URL.
type SettingsResponse struct {
	HomepageVideoURL string `json:"homepage_video_url"`
	EmbedURL         string `json:"embed_url,omitempty"`
}

// CSRFResponse carries a freshly issued anti-forgery token. The same value is
// set as a cookie; state-changing requests echo it in a header.
type CSRFResponse struct {
	Token string `json:"csrf_token"`
}

// DownloadResponse is returned after a download was counted.
type DownloadResponse struct {
	CheatID   string `json:"cheat_id"`
	URL       string `json:"url"`
	Downloads int    `json:"downloads"`
}
