package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"visualdeck/media"
)

func item(id string, mediaType media.Type) media.Item {
	return media.Item{
		ID:        id,
		Title:     id,
		MediaType: mediaType,
	}
}

func mixedLibrary() []media.Item {
	return []media.Item{
		item("video-a", media.TypeVideo),
		item("image-b", media.TypeImage),
		item("audio-c", media.TypeAudio),
	}
}

func TestSystem_NextSkipsImagesAndWraps(t *testing.T) {
	ps := NewSystem(mixedLibrary())

	ps.Next()
	assert.Equal(t, 2, ps.Snapshot().ActiveIndex, "image-b should be skipped")
	assert.Equal(t, "audio-c", ps.Snapshot().Active.ID)

	ps.Next()
	assert.Equal(t, 0, ps.Snapshot().ActiveIndex, "should wrap back to video-a")
	assert.Equal(t, "video-a", ps.Snapshot().Active.ID)
}

func TestSystem_NextThenPrevReturnsToStart(t *testing.T) {
	ps := NewSystem(mixedLibrary())

	start := ps.Snapshot().ActiveIndex
	ps.Next()
	ps.Prev()
	assert.Equal(t, start, ps.Snapshot().ActiveIndex)
}

func TestSystem_AllImagesIsNoop(t *testing.T) {
	ps := NewSystem([]media.Item{
		item("img-1", media.TypeImage),
		item("img-2", media.TypeImage),
		item("img-3", media.TypeImage),
	})

	ps.Next()
	assert.Equal(t, 0, ps.Snapshot().ActiveIndex)
	ps.Prev()
	assert.Equal(t, 0, ps.Snapshot().ActiveIndex)
}

func TestSystem_EmptyLibrary(t *testing.T) {
	ps := NewSystem(nil)

	ps.Next()
	ps.Prev()

	state := ps.Snapshot()
	assert.Equal(t, 0, state.ActiveIndex)
	assert.Equal(t, NoMedia, state.Active)
}

func TestSystem_SelectByIDImageIsNoop(t *testing.T) {
	ps := NewSystem(mixedLibrary())

	ps.SelectByID("image-b")

	state := ps.Snapshot()
	assert.Equal(t, 0, state.ActiveIndex)
	assert.False(t, state.IsPlaying)
}

func TestSystem_SelectByIDStartsPlayback(t *testing.T) {
	ps := NewSystem(mixedLibrary())

	ps.SelectByID("audio-c")

	state := ps.Snapshot()
	assert.Equal(t, 2, state.ActiveIndex)
	assert.True(t, state.IsPlaying)
	assert.Equal(t, StageAudio, state.Stage)

	ps.SelectByID("video-a")
	assert.Equal(t, StageVideo, ps.Snapshot().Stage)
}

func TestSystem_SelectByIndex(t *testing.T) {
	ps := NewSystem(mixedLibrary())

	ps.SelectByIndex(1)
	assert.Equal(t, 0, ps.Snapshot().ActiveIndex, "selecting an image positionally is a no-op")

	ps.SelectByIndex(2)
	state := ps.Snapshot()
	assert.Equal(t, 2, state.ActiveIndex)
	assert.True(t, state.IsPlaying)

	ps.SelectByIndex(99)
	assert.Equal(t, 2, ps.Snapshot().ActiveIndex)
}

func TestSystem_RemovingActiveItemResetsCursor(t *testing.T) {
	items := mixedLibrary()
	ps := NewSystem(items)

	ps.SelectByID("audio-c")
	assert.True(t, ps.Snapshot().IsPlaying)

	// audio-c removed out from under the cursor
	ps.OnLibraryChanged(items[:2])

	state := ps.Snapshot()
	assert.Equal(t, 0, state.ActiveIndex)
	assert.False(t, state.IsPlaying)
}

func TestSystem_RemovingOtherItemKeepsCursor(t *testing.T) {
	items := mixedLibrary()
	ps := NewSystem(items)

	ps.SelectByID("audio-c")

	// video-a removed; the cursor index shifts but stays on a valid item
	ps.OnLibraryChanged(items[1:])

	state := ps.Snapshot()
	assert.True(t, state.IsPlaying)
	assert.Equal(t, "audio-c", state.Active.ID)
}

func TestSystem_MediaEndedAdvances(t *testing.T) {
	ps := NewSystem(mixedLibrary())

	ps.SelectByID("video-a")
	ps.MediaEnded()

	assert.Equal(t, "audio-c", ps.Snapshot().Active.ID)
}

func TestSystem_SetProgressClamps(t *testing.T) {
	ps := NewSystem(mixedLibrary())

	ps.SetProgress(150)
	assert.Equal(t, float64(100), ps.Snapshot().Progress)

	ps.SetProgress(-5)
	assert.Equal(t, float64(0), ps.Snapshot().Progress)
}

func TestResolve(t *testing.T) {
	items := mixedLibrary()

	// Cursor on a playable item
	assert.Equal(t, "video-a", Resolve(items, 0).ID)

	// Cursor on an image falls back to the first playable item
	assert.Equal(t, "video-a", Resolve(items, 1).ID)

	// Out-of-range cursor falls back too
	assert.Equal(t, "video-a", Resolve(items, 42).ID)

	// No playable items at all surfaces the sentinel
	allImages := []media.Item{item("img", media.TypeImage)}
	assert.Equal(t, NoMedia, Resolve(allImages, 0))

	assert.Equal(t, NoMedia, Resolve(nil, 0))
}
