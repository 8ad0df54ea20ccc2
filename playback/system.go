package playback

import (
	"encoding/json"
	"sync"

	"visualdeck/events"
	"visualdeck/media"
)

// State is the playback snapshot pushed to the presentation layer.
type State struct {
	ActiveIndex int        `json:"active_index"`
	IsPlaying   bool       `json:"is_playing"`
	Progress    float64    `json:"progress"`
	Stage       Stage      `json:"stage"`
	Active      media.Item `json:"active"`
}

// System owns the playback cursor over the library's current ordering.
// It never touches media timing itself: the presentation layer feeds
// progress back in and calls MediaEnded when the underlying element
// finishes.
type System struct {
	mu       sync.RWMutex
	items    []media.Item
	index    int
	playing  bool
	progress float64
}

func NewSystem(items []media.Item) *System {
	return &System{items: snapshot(items)}
}

// OnLibraryChanged is the library store subscriber. Removing the item
// the cursor points at resets the cursor to the front and stops
// playback; no attempt is made to chase "the next logical item".
func (ps *System) OnLibraryChanged(items []media.Item) {
	ps.mu.Lock()

	var prevID string
	if ps.index >= 0 && ps.index < len(ps.items) {
		prevID = ps.items[ps.index].ID
	}

	ps.items = snapshot(items)

	if prevID != "" && indexOf(ps.items, prevID) == -1 {
		ps.index = 0
		ps.playing = false
	}
	if ps.index >= len(ps.items) {
		ps.index = 0
	}

	ps.mu.Unlock()
	ps.broadcast()
}

// Next advances the cursor circularly, skipping images. In an all-image
// library the scan comes back around and the cursor stays put.
func (ps *System) Next() {
	ps.step(1)
}

func (ps *System) Prev() {
	ps.step(-1)
}

func (ps *System) step(dir int) {
	ps.mu.Lock()
	n := len(ps.items)
	if n == 0 {
		ps.mu.Unlock()
		return
	}

	idx := (ps.index + dir + n) % n
	for ps.items[idx].MediaType == media.TypeImage && idx != ps.index {
		idx = (idx + dir + n) % n
	}
	if ps.items[idx].MediaType == media.TypeImage {
		ps.mu.Unlock()
		return
	}

	ps.index = idx
	ps.progress = 0
	ps.mu.Unlock()
	ps.broadcast()
}

// SelectByID points the cursor at the matching item and starts playing.
// Selecting an image is a no-op; images are not playable.
func (ps *System) SelectByID(id string) {
	ps.mu.Lock()
	idx := indexOf(ps.items, id)
	if idx == -1 || ps.items[idx].MediaType == media.TypeImage {
		ps.mu.Unlock()
		return
	}
	ps.index = idx
	ps.playing = true
	ps.progress = 0
	ps.mu.Unlock()
	ps.broadcast()
}

// SelectByIndex is SelectByID addressed positionally, used by the
// management surface's play buttons.
func (ps *System) SelectByIndex(index int) {
	ps.mu.Lock()
	if index < 0 || index >= len(ps.items) || ps.items[index].MediaType == media.TypeImage {
		ps.mu.Unlock()
		return
	}
	ps.index = index
	ps.playing = true
	ps.progress = 0
	ps.mu.Unlock()
	ps.broadcast()
}

// MediaEnded is called by the presentation layer when the mounted
// element reports completion.
func (ps *System) MediaEnded() {
	ps.Next()
}

func (ps *System) SetPlaying(playing bool) {
	ps.mu.Lock()
	ps.playing = playing
	ps.mu.Unlock()
	ps.broadcast()
}

// SetProgress records the render progress reported by the presentation
// layer, clamped to [0,100].
func (ps *System) SetProgress(percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	ps.mu.Lock()
	ps.progress = percent
	ps.mu.Unlock()
	ps.broadcast()
}

func (ps *System) Snapshot() State {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	active := Resolve(ps.items, ps.index)
	return State{
		ActiveIndex: ps.index,
		IsPlaying:   ps.playing,
		Progress:    ps.progress,
		Stage:       StageFor(active.MediaType),
		Active:      active,
	}
}

// Just enough to ping clients to rehydrate themselves.
func (ps *System) broadcast() {
	jsonState, _ := json.Marshal(ps.Snapshot())
	events.Publish(events.StreamPlayback, jsonState)
}

func indexOf(items []media.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func snapshot(items []media.Item) []media.Item {
	out := make([]media.Item, len(items))
	copy(out, items)
	return out
}
