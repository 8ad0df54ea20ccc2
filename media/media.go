package media

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

type Type string

const (
	TypeVideo Type = "video"
	TypeAudio Type = "audio"
	TypeImage Type = "image"
)

// Origin records where an item came from. It is provenance only and
// carries no behaviour beyond display badges in the deck UI.
type Origin string

const (
	OriginLocal       Origin = "local"
	OriginObjectStore Origin = "r2"
	OriginExternalURL Origin = "url"
	OriginNetease     Origin = "netease"
	OriginQQ          Origin = "qq"
)

// Item is a single library entry. ID is the sole join key and is never
// reused once assigned. Duration is a display label like "3:45" or
// "1920x1080" for images. It is never parsed or reconciled with the real
// media length.
type Item struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Artist          string    `db:"artist" json:"artist"`
	SourceURL       string    `db:"source_url" json:"source_url"`
	Thumbnail       string    `db:"thumbnail" json:"thumbnail"`
	Duration        string    `db:"duration" json:"duration"`
	Tags            Tags      `db:"tags" json:"tags"`
	MediaType       Type      `db:"media_type" json:"media_type"`
	Origin          Origin    `db:"origin" json:"origin"`
	SizeBytes       int64     `db:"size_bytes" json:"size_bytes,omitempty"`
	DominantColours Colours   `db:"dominant_colours" json:"dominant_colours,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Playable reports whether the item can be mounted on a playback stage.
// Images live in the library but are never the active playback item.
func (i Item) Playable() bool {
	return i.MediaType != TypeImage
}

// ClassifyContentType maps a declared content type onto a media type.
// Anything that isn't audio/* or image/* is treated as video, matching
// how uploads are bucketed at success time.
func ClassifyContentType(fileType string) Type {
	switch {
	case strings.HasPrefix(fileType, "audio/"):
		return TypeAudio
	case strings.HasPrefix(fileType, "image/"):
		return TypeImage
	default:
		return TypeVideo
	}
}

// DeriveID builds a deterministic id for imported items so re-importing
// the same URL doesn't mint a second identity for it.
func DeriveID(origin Origin, sourceURL string) string {
	return fmt.Sprintf("%s:%d", origin, xxhash.Sum64String(sourceURL))
}

// Tags stores a string slice as a comma separated value in the database.
// Example input: []string{"Synthwave", "Electronic"}
// Example DB value: Synthwave,Electronic
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	return strings.Join(t, ","), nil
}

func (t *Tags) Scan(src interface{}) error {
	s, ok := src.(string)
	if !ok {
		return errors.New("incompatible type for Tags")
	}
	if s == "" {
		*t = nil
		return nil
	}
	*t = Tags(strings.Split(s, ","))
	return nil
}

// Colours holds the dominant colours pulled from an item's thumbnail,
// stored the same comma separated way as Tags.
type Colours []string

func (c Colours) Value() (driver.Value, error) {
	return strings.Join(c, ","), nil
}

func (c *Colours) Scan(src interface{}) error {
	s, ok := src.(string)
	if !ok {
		return errors.New("incompatible type for Colours")
	}
	if s == "" {
		*c = nil
		return nil
	}
	*c = Colours(strings.Split(s, ","))
	return nil
}
