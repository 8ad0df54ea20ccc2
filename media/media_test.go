package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyContentType(t *testing.T) {
	cases := []struct {
		fileType string
		want     Type
	}{
		{"audio/mpeg", TypeAudio},
		{"audio/flac", TypeAudio},
		{"image/png", TypeImage},
		{"image/jpeg", TypeImage},
		{"video/mp4", TypeVideo},
		{"application/octet-stream", TypeVideo},
		{"", TypeVideo},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyContentType(tc.fileType), tc.fileType)
	}
}

func TestPlayable(t *testing.T) {
	assert.True(t, Item{MediaType: TypeVideo}.Playable())
	assert.True(t, Item{MediaType: TypeAudio}.Playable())
	assert.False(t, Item{MediaType: TypeImage}.Playable())
}

func TestDeriveIDIsDeterministicPerOriginAndURL(t *testing.T) {
	a := DeriveID(OriginNetease, "https://example.com/stream.mp3")
	b := DeriveID(OriginNetease, "https://example.com/stream.mp3")
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, DeriveID(OriginNetease, "https://example.com/other.mp3"))
	assert.NotEqual(t, a, DeriveID(OriginExternalURL, "https://example.com/stream.mp3"))
}

func TestTagsRoundTripThroughDriverValue(t *testing.T) {
	tags := Tags{"SYNTHWAVE", "CLOUD"}

	value, err := tags.Value()
	require.NoError(t, err)
	assert.Equal(t, "SYNTHWAVE,CLOUD", value)

	var scanned Tags
	require.NoError(t, scanned.Scan("SYNTHWAVE,CLOUD"))
	assert.Equal(t, tags, scanned)
}

func TestTagsScanEmptyStringYieldsNil(t *testing.T) {
	var tags Tags
	require.NoError(t, tags.Scan(""))
	assert.Nil(t, tags)
}

func TestTagsScanRejectsNonString(t *testing.T) {
	var tags Tags
	assert.Error(t, tags.Scan(42))
}

func TestColoursRoundTripThroughDriverValue(t *testing.T) {
	colours := Colours{"#1a2b3c", "#ffffff"}

	value, err := colours.Value()
	require.NoError(t, err)
	assert.Equal(t, "#1a2b3c,#ffffff", value)

	var scanned Colours
	require.NoError(t, scanned.Scan("#1a2b3c,#ffffff"))
	assert.Equal(t, colours, scanned)
}

func TestSeedIsOrderedMixedMedia(t *testing.T) {
	items := Seed()
	require.NotEmpty(t, items)

	seen := map[Type]bool{}
	ids := map[string]bool{}
	for _, item := range items {
		seen[item.MediaType] = true
		assert.False(t, ids[item.ID], "duplicate seed id %s", item.ID)
		ids[item.ID] = true
		assert.NotEmpty(t, item.SourceURL)
		assert.NotEmpty(t, item.Thumbnail)
	}

	assert.True(t, seen[TypeVideo])
	assert.True(t, seen[TypeAudio])
	assert.True(t, seen[TypeImage])
}
