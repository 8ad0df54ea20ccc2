package importer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"visualdeck/media"
)

// Provider selects how an import URL is interpreted. Netease share
// links get rewritten to the public outer-url stream; QQ links must
// already be direct audio URLs; generic takes the URL as-is.
type Provider string

const (
	ProviderNetease Provider = "netease"
	ProviderQQ      Provider = "qq"
	ProviderGeneric Provider = "generic"
)

const (
	defaultVinylThumb = "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?q=80&w=500"
	neteaseThumb      = "https://p1.music.126.net/6y-UleORITEDbvrOLV0Q8A==/5639395138885805.jpg"
	neteaseOuterURL   = "https://music.163.com/song/media/outer/url?id=%s.mp3"
)

var (
	ErrInvalidURL = errors.New("import URL must start with http:// or https://")

	neteaseID = regexp.MustCompile(`id=(\d+)`)
)

// FromURL builds a library item for an external stream without
// uploading anything. Imports are treated as audio; titles usually need
// a manual edit afterwards, which is why the id is derived from the
// stream URL rather than the display fields.
func FromURL(rawURL string, provider Provider) (media.Item, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return media.Item{}, ErrInvalidURL
	}

	title := "New Track"
	artist := "Unknown"
	sourceURL := rawURL
	thumbnail := defaultVinylThumb
	origin := media.OriginExternalURL

	switch {
	case provider == ProviderNetease || strings.Contains(rawURL, "163.com"):
		if m := neteaseID.FindStringSubmatch(rawURL); m != nil {
			id := m[1]
			sourceURL = fmt.Sprintf(neteaseOuterURL, id)
			origin = media.OriginNetease
			title = "Netease Track " + id
			artist = "Netease Cloud Music"
			thumbnail = neteaseThumb
		}
	case provider == ProviderQQ:
		origin = media.OriginQQ
		title = "QQ Music Track"
		artist = "Tencent Music"
	}

	now := time.Now()
	return media.Item{
		ID:        media.DeriveID(origin, sourceURL),
		Title:     title,
		Artist:    artist,
		SourceURL: sourceURL,
		Thumbnail: thumbnail,
		Duration:  "STREAM",
		Tags:      media.Tags{strings.ToUpper(string(origin))},
		MediaType: media.TypeAudio,
		Origin:    origin,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
