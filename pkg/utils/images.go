package utils

import (
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strings"
)

// ImageService resolves a text description to a representative photo URL.
// Lookups are best-effort and never fail; repeated calls with the same input
// may yield different pictures.
type ImageService interface {
	ContextualImage(query, kind string) string
}

var bracketedQualifier = regexp.MustCompile(`\(.*\)`)

// PollinationsImages builds prompt URLs for the Pollinations image API.
type PollinationsImages struct{}

func NewPollinationsImages() ImageService {
	return &PollinationsImages{}
}

func (p *PollinationsImages) ContextualImage(query, kind string) string {
	clean := strings.TrimSpace(bracketedQualifier.ReplaceAllString(query, ""))
	prompt := fmt.Sprintf("%s %s, travel photography, 4k, cinematic lighting, scenic view", clean, kind)
	return fmt.Sprintf(
		"https://image.pollinations.ai/prompt/%s?width=800&height=600&nologo=true&seed=%d",
		url.PathEscape(prompt), rand.Intn(10000),
	)
}

// MapsSearchURL returns a Google Maps search link for a free-form location.
// The viewer is fire-and-forget; nothing is awaited from it.
func MapsSearchURL(location string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(location)
}
