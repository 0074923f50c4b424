// Package imagegen resolves a textual prompt into a hosted image URL via a
// prompt-to-image service. The service renders on demand at a composed URL;
// this package only verifies the URL answers before handing it downstream.
package imagegen

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Generator defines the interface for visual generation.
type Generator interface {
	// CoverURL returns a hosted image URL for the prompt, or "" when the
	// prompt is empty or the service does not confirm availability.
	CoverURL(ctx context.Context, prompt string) string
}

// Fixed stylistic suffix keeping generated visuals on one aesthetic.
const styleSuffix = ", professional, modern, minimalist, tech aesthetic, high quality"

// PollinationsConfig holds settings for the Pollinations URL API.
type PollinationsConfig struct {
	BaseURL string // e.g. "https://image.pollinations.ai/prompt"
	Width   int
	Height  int
	Timeout time.Duration
}

// Pollinations implements Generator against the Pollinations URL-based API.
type Pollinations struct {
	baseURL string
	width   int
	height  int
	http    *http.Client
}

func NewPollinations(cfg PollinationsConfig) *Pollinations {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://image.pollinations.ai/prompt"
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1200
	}
	if h <= 0 {
		h = 675
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Pollinations{
		baseURL: base,
		width:   w,
		height:  h,
		http:    &http.Client{Timeout: timeout},
	}
}

// CoverURL composes the image URL for an augmented prompt and HEAD-probes it.
// A missing image never blocks downstream stages; the item degrades to
// text-only.
func (p *Pollinations) CoverURL(ctx context.Context, prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return ""
	}
	imageURL := p.composeURL(prompt + styleSuffix)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return ""
	}
	resp, err := p.http.Do(req)
	if err != nil {
		slog.Warn("imagegen: availability check failed", "err", err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Warn("imagegen: image not available", "status", resp.StatusCode)
		return ""
	}
	return imageURL
}

func (p *Pollinations) composeURL(prompt string) string {
	q := url.Values{}
	q.Set("width", strconv.Itoa(p.width))
	q.Set("height", strconv.Itoa(p.height))
	q.Set("nologo", "true")
	return p.baseURL + "/" + url.PathEscape(prompt) + "?" + q.Encode()
}
