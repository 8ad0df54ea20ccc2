package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"visualdeck/config"
	"visualdeck/events"
	"visualdeck/gateway"
	"visualdeck/importer"
	"visualdeck/library"
	"visualdeck/playback"
	"visualdeck/upload"
)

type Deps struct {
	Library  *library.Store
	Playback *playback.System
	Uploads  *upload.Pipeline
	Gateway  *gateway.Client
	Settings *config.Store
}

func renderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func renderJSONMessage(w http.ResponseWriter, message string) {
	renderJSON(w, http.StatusOK, map[string]string{"message": message})
}

func renderJSONError(w http.ResponseWriter, status int, err error) {
	renderJSON(w, status, map[string]string{"error": err.Error()})
}

func Register(mux *http.ServeMux, deps Deps) http.Handler {

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "Welcome to VisualDeck, the media console engine.\n")
	})

	mux.HandleFunc("GET /api/v1/playing", func(w http.ResponseWriter, r *http.Request) {
		renderJSON(w, http.StatusOK, deps.Playback.Snapshot())
	})

	mux.HandleFunc("POST /api/v1/playback/next", func(w http.ResponseWriter, r *http.Request) {
		deps.Playback.Next()
		renderJSON(w, http.StatusOK, deps.Playback.Snapshot())
	})

	mux.HandleFunc("POST /api/v1/playback/prev", func(w http.ResponseWriter, r *http.Request) {
		deps.Playback.Prev()
		renderJSON(w, http.StatusOK, deps.Playback.Snapshot())
	})

	// The presentation layer reports end-of-media here; the controller
	// itself knows nothing about timing.
	mux.HandleFunc("POST /api/v1/playback/ended", func(w http.ResponseWriter, r *http.Request) {
		deps.Playback.MediaEnded()
		renderJSON(w, http.StatusOK, deps.Playback.Snapshot())
	})

	mux.HandleFunc("POST /api/v1/playback/select", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID    string `json:"id"`
			Index *int   `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderJSONError(w, http.StatusBadRequest, err)
			return
		}
		if body.Index != nil {
			deps.Playback.SelectByIndex(*body.Index)
		} else {
			deps.Playback.SelectByID(body.ID)
		}
		renderJSON(w, http.StatusOK, deps.Playback.Snapshot())
	})

	mux.HandleFunc("POST /api/v1/playback/progress", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Percent float64 `json:"percent"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderJSONError(w, http.StatusBadRequest, err)
			return
		}
		deps.Playback.SetProgress(body.Percent)
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("POST /api/v1/playback/state", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IsPlaying bool `json:"is_playing"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderJSONError(w, http.StatusBadRequest, err)
			return
		}
		deps.Playback.SetPlaying(body.IsPlaying)
		renderJSON(w, http.StatusOK, deps.Playback.Snapshot())
	})

	mux.HandleFunc("GET /api/v1/library", func(w http.ResponseWriter, r *http.Request) {
		renderJSON(w, http.StatusOK, deps.Library.Snapshot())
	})

	mux.HandleFunc("DELETE /api/v1/library/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Library.Remove(r.PathValue("id")); err != nil {
			renderJSONError(w, http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("PATCH /api/v1/library/{id}", func(w http.ResponseWriter, r *http.Request) {
		var patch library.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			renderJSONError(w, http.StatusBadRequest, err)
			return
		}
		if err := deps.Library.Update(r.PathValue("id"), patch); err != nil {
			renderJSONError(w, http.StatusInternalServerError, err)
			return
		}
		renderJSON(w, http.StatusOK, deps.Library.Snapshot())
	})

	mux.HandleFunc("POST /api/v1/import", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Gateway.Configured(); err != nil {
			renderJSONError(w, http.StatusConflict, err)
			return
		}
		var body struct {
			URL      string            `json:"url"`
			Provider importer.Provider `json:"provider"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderJSONError(w, http.StatusBadRequest, err)
			return
		}
		item, err := importer.FromURL(body.URL, body.Provider)
		if err != nil {
			renderJSONError(w, http.StatusBadRequest, err)
			return
		}
		if err := deps.Library.Add(item); err != nil {
			renderJSONError(w, http.StatusConflict, err)
			return
		}
		renderJSON(w, http.StatusCreated, item)
	})

	mux.HandleFunc("POST /api/v1/uploads", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Gateway.Configured(); err != nil {
			renderJSONError(w, http.StatusConflict, err)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			renderJSONError(w, http.StatusBadRequest, err)
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		result, err := deps.Uploads.Upload(r.Context(), header.Filename, contentType, header.Size, file)
		if err != nil {
			renderJSONError(w, http.StatusBadGateway, err)
			return
		}
		renderJSON(w, http.StatusCreated, result)
	})

	mux.HandleFunc("GET /api/v1/uploads", func(w http.ResponseWriter, r *http.Request) {
		renderJSON(w, http.StatusOK, deps.Uploads.Tasks())
	})

	mux.HandleFunc("GET /api/v1/settings/gateway", func(w http.ResponseWriter, r *http.Request) {
		url, err := deps.Settings.GatewayURL()
		if err != nil {
			renderJSONError(w, http.StatusInternalServerError, err)
			return
		}
		renderJSON(w, http.StatusOK, map[string]string{"gateway_url": url})
	})

	mux.HandleFunc("PUT /api/v1/settings/gateway", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			GatewayURL string `json:"gateway_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderJSONError(w, http.StatusBadRequest, err)
			return
		}
		if err := deps.Settings.SetGatewayURL(body.GatewayURL); err != nil {
			if errors.Is(err, config.ErrInvalidGatewayURL) {
				renderJSONError(w, http.StatusBadRequest, err)
				return
			}
			renderJSONError(w, http.StatusInternalServerError, err)
			return
		}
		renderJSONMessage(w, "gateway URL updated")
	})

	mux.HandleFunc("/events", events.Server.ServeHTTP)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"http://localhost:1313", "http://localhost:5173", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Origin, Content-Type, Accept"},
	})

	return c.Handler(mux)
}
