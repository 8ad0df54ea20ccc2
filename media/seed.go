package media

const (
	sampleBase = "https://storage.googleapis.com/gtv-videos-bucket/sample"
	sampleImgs = "https://storage.googleapis.com/gtv-videos-bucket/sample/images"
)

// Seed returns the demo library shown on first boot, before anything has
// been uploaded or loaded from the gateway.
func Seed() []Item {
	return []Item{
		{
			ID:        "img-cyberpunk-streets",
			Title:     "CYBERPUNK STREETS",
			Artist:    "Midjourney",
			SourceURL: "https://images.unsplash.com/photo-1605647540924-852290f6b0d5?q=80&w=1000&auto=format&fit=crop",
			Thumbnail: "https://images.unsplash.com/photo-1605647540924-852290f6b0d5?q=80&w=500&auto=format&fit=crop",
			Duration:  "1920x1080",
			Tags:      Tags{"Neon", "Japan", "Night"},
			MediaType: TypeImage,
			Origin:    OriginExternalURL,
		},
		{
			ID:        "img-retro-wave",
			Title:     "RETRO WAVE",
			Artist:    "Synth",
			SourceURL: "https://images.unsplash.com/photo-1563089145-599997674d42?q=80&w=1000&auto=format&fit=crop",
			Thumbnail: "https://images.unsplash.com/photo-1563089145-599997674d42?q=80&w=500&auto=format&fit=crop",
			Duration:  "1080p",
			Tags:      Tags{"80s", "Pink", "Vibe"},
			MediaType: TypeImage,
			Origin:    OriginExternalURL,
		},
		{
			ID:        "audio-midnight-city",
			Title:     "MIDNIGHT CITY",
			Artist:    "M83",
			SourceURL: sampleBase + "/ForBiggerJoyrides.mp4",
			Thumbnail: "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?q=80&w=1000&auto=format&fit=crop",
			Duration:  "04:03",
			Tags:      Tags{"Synthwave", "Electronic", "Hit"},
			MediaType: TypeAudio,
			Origin:    OriginExternalURL,
		},
		{
			ID:        "audio-instant-crush",
			Title:     "INSTANT CRUSH",
			Artist:    "Daft Punk",
			SourceURL: sampleBase + "/ForBiggerBlazes.mp4",
			Thumbnail: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?q=80&w=1000&auto=format&fit=crop",
			Duration:  "05:37",
			Tags:      Tags{"French House", "Vibe"},
			MediaType: TypeAudio,
			Origin:    OriginExternalURL,
		},
		{
			ID:        "tears-of-steel",
			Title:     "TEARS OF STEEL",
			Artist:    "Blender Foundation",
			SourceURL: sampleBase + "/TearsOfSteel.mp4",
			Thumbnail: sampleImgs + "/TearsOfSteel.jpg",
			Duration:  "12:14",
			Tags:      Tags{"Sci-Fi", "Cyberpunk", "VFX"},
			MediaType: TypeVideo,
			Origin:    OriginExternalURL,
		},
		{
			ID:        "sintel",
			Title:     "SINTEL",
			Artist:    "Blender Foundation",
			SourceURL: sampleBase + "/Sintel.mp4",
			Thumbnail: sampleImgs + "/Sintel.jpg",
			Duration:  "14:48",
			Tags:      Tags{"Fantasy", "Epic", "Dragon"},
			MediaType: TypeVideo,
			Origin:    OriginExternalURL,
		},
		{
			ID:        "big-buck-bunny",
			Title:     "BIG BUCK BUNNY",
			Artist:    "Blender Foundation",
			SourceURL: sampleBase + "/BigBuckBunny.mp4",
			Thumbnail: sampleImgs + "/BigBuckBunny.jpg",
			Duration:  "09:56",
			Tags:      Tags{"Animation", "Classic", "Comedy"},
			MediaType: TypeVideo,
			Origin:    OriginExternalURL,
		},
	}
}
