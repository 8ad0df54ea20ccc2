package library

import "visualdeck/media"

// Patch carries the mutable fields of an item. Nil fields are left
// untouched. Id, media type and origin are fixed at creation.
type Patch struct {
	Title           *string        `json:"title,omitempty"`
	Artist          *string        `json:"artist,omitempty"`
	SourceURL       *string        `json:"source_url,omitempty"`
	Thumbnail       *string        `json:"thumbnail,omitempty"`
	Duration        *string        `json:"duration,omitempty"`
	Tags            *media.Tags    `json:"tags,omitempty"`
	DominantColours *media.Colours `json:"dominant_colours,omitempty"`
}

func (p Patch) apply(item *media.Item) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Artist != nil {
		item.Artist = *p.Artist
	}
	if p.SourceURL != nil {
		item.SourceURL = *p.SourceURL
	}
	if p.Thumbnail != nil {
		item.Thumbnail = *p.Thumbnail
	}
	if p.Duration != nil {
		item.Duration = *p.Duration
	}
	if p.Tags != nil {
		item.Tags = *p.Tags
	}
	if p.DominantColours != nil {
		item.DominantColours = *p.DominantColours
	}
}
