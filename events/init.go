package events

import "github.com/r3labs/sse/v2"

const (
	StreamPlayback = "playback"
	StreamLibrary  = "library"
	StreamUploads  = "uploads"
)

var Server *sse.Server

func Init() {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(StreamPlayback)
	server.CreateStream(StreamLibrary)
	server.CreateStream(StreamUploads)
	Server = server
}

// Publish pushes an event to the named stream. It is a no-op before
// Init has run, which keeps unit tests that don't care about SSE quiet.
func Publish(stream string, data []byte) {
	if Server == nil {
		return
	}
	Server.Publish(stream, &sse.Event{Data: data})
}
