// Package catalog holds the fixed, curated list of launchable shows and
// videos. The list is embedded at build time and read-only; editing it means
// editing shows.json and rebuilding, so nothing on the kiosk itself can
// change what a toddler can launch.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
)

//go:embed shows.json
var showsJSON []byte

// Show is one launchable catalog entry. ChannelID and ContentID feed the
// Roku deep link; Accent and Image feed the menu card.
type Show struct {
	Name      string `json:"name"`
	ChannelID int    `json:"channelId"`
	ContentID string `json:"contentId"`
	MediaType string `json:"mediaType"` // "series" or "movie"
	Accent    RGB    `json:"accent"`
	Image     string `json:"image,omitempty"` // artwork file name, optional
}

// Video is one curated YouTube entry, launched through the YouTube channel.
type Video struct {
	Name    string `json:"name"`
	VideoID string `json:"videoId"`
	Accent  RGB    `json:"accent"`
}

// RGB unmarshals from a [r, g, b] JSON array.
type RGB [3]uint8

// Color returns the opaque color for drawing.
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{c[0], c[1], c[2], 0xff}
}

type catalogFile struct {
	Shows  []Show  `json:"shows"`
	Videos []Video `json:"videos"`
}

// Catalog is the decoded, immutable content list.
type Catalog struct {
	Shows  []Show
	Videos []Video
}

// Load decodes the embedded catalog. An entry without a name or channel is a
// build-time data bug and rejected here rather than surfacing on screen.
func Load() (*Catalog, error) {
	return parse(showsJSON)
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, s := range file.Shows {
		if s.Name == "" {
			return nil, fmt.Errorf("catalog: show %d has no name", i)
		}
		if s.ChannelID == 0 {
			return nil, fmt.Errorf("catalog: show %q has no channel", s.Name)
		}
	}
	for i, v := range file.Videos {
		if v.Name == "" || v.VideoID == "" {
			return nil, fmt.Errorf("catalog: video %d incomplete", i)
		}
	}
	return &Catalog{Shows: file.Shows, Videos: file.Videos}, nil
}
