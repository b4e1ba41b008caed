// Package frame renders Farcaster frame metadata for embedding the mini
// app in casts.
package frame

import (
	"fmt"

	"github.com/creator-tips/internal/config"
)

// Button is a single frame action button.
type Button struct {
	Text   string `json:"text"`
	Action string `json:"action,omitempty"`
	Target string `json:"target,omitempty"`
}

// MetaTagOptions customizes a frame metadata set. Zero values fall back
// to the configured app defaults.
type MetaTagOptions struct {
	Title       string
	Description string
	Image       string
	Buttons     []Button
	PostURL     string
	InputText   string
}

// Generator builds frame metadata from the app configuration.
type Generator struct {
	cfg *config.FrameConfig
}

// NewGenerator creates a frame metadata generator.
func NewGenerator(cfg *config.FrameConfig) *Generator {
	return &Generator{cfg: cfg}
}

// MetaTags returns the fc:frame and OpenGraph tag map for the given
// options. Buttons are numbered from 1 in declaration order.
func (g *Generator) MetaTags(opts MetaTagOptions) map[string]string {
	title := opts.Title
	if title == "" {
		title = g.cfg.AppName
	}
	description := opts.Description
	if description == "" {
		description = g.cfg.Description
	}
	image := opts.Image
	if image == "" {
		image = g.defaultImage()
	}

	tags := map[string]string{
		"fc:frame":       "vNext",
		"fc:frame:image": image,
		"og:title":       title,
		"og:description": description,
		"og:image":       image,
	}

	for i, button := range opts.Buttons {
		num := i + 1
		tags[fmt.Sprintf("fc:frame:button:%d", num)] = button.Text
		if button.Action != "" {
			tags[fmt.Sprintf("fc:frame:button:%d:action", num)] = button.Action
		}
		if button.Target != "" {
			tags[fmt.Sprintf("fc:frame:button:%d:target", num)] = button.Target
		}
	}

	if opts.PostURL != "" {
		tags["fc:frame:post_url"] = opts.PostURL
	}
	if opts.InputText != "" {
		tags["fc:frame:input:text"] = opts.InputText
	}

	return tags
}

// DefaultMetaTags returns the tag set for the app's landing frame.
func (g *Generator) DefaultMetaTags() map[string]string {
	return g.MetaTags(MetaTagOptions{
		Buttons: []Button{
			{Text: "💰 Send a Tip", Action: "link", Target: g.cfg.AppURL},
		},
	})
}

// Manifest is the .well-known/farcaster.json account manifest.
type Manifest struct {
	Frame ManifestFrame `json:"frame"`
}

// ManifestFrame describes the mini app to Farcaster clients.
type ManifestFrame struct {
	Version  string `json:"version"`
	Name     string `json:"name"`
	HomeURL  string `json:"homeUrl"`
	IconURL  string `json:"iconUrl"`
	ImageURL string `json:"imageUrl"`
}

// BuildManifest returns the account manifest for the configured app.
func (g *Generator) BuildManifest() *Manifest {
	return &Manifest{
		Frame: ManifestFrame{
			Version:  "1",
			Name:     g.cfg.AppName,
			HomeURL:  g.cfg.AppURL,
			IconURL:  fmt.Sprintf("%s/icon.png", g.cfg.AppURL),
			ImageURL: g.defaultImage(),
		},
	}
}

func (g *Generator) defaultImage() string {
	if g.cfg.ImageURL != "" {
		return g.cfg.ImageURL
	}
	return fmt.Sprintf("%s/frame-image.jpg", g.cfg.AppURL)
}
