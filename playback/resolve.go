package playback

import "visualdeck/media"

// Stage tells the presentation layer which surface should mount for
// the active item.
type Stage string

const (
	StageVideo Stage = "video"
	StageAudio Stage = "audio"
)

func StageFor(t media.Type) Stage {
	if t == media.TypeAudio {
		return StageAudio
	}
	return StageVideo
}

// NoMedia is the zero-value item surfaced when nothing is playable:
// empty title, artist and URL rather than an error.
var NoMedia = media.Item{}

// Resolve derives the active playable item from the current ordering
// and cursor index. If the cursor sits on an image, for instance because
// the list changed shape underneath it, the first playable item in the
// whole collection stands in. With no playable items at all, NoMedia is
// returned.
func Resolve(items []media.Item, index int) media.Item {
	if len(items) == 0 {
		return NoMedia
	}
	if index >= 0 && index < len(items) && items[index].Playable() {
		return items[index]
	}
	for _, item := range items {
		if item.Playable() {
			return item
		}
	}
	return NoMedia
}
