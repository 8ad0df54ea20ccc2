package upload

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"visualdeck/events"
	"visualdeck/gateway"
	"visualdeck/library"
	"visualdeck/media"
)

const (
	defaultAudioThumb = "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?q=80&w=500"
	defaultVideoThumb = "https://images.unsplash.com/photo-1574717024653-61fd2cf4d44c?q=80&w=500"
)

// Result is what a finished upload hands back: the durable object
// location plus the library item minted from it.
type Result struct {
	PublicURL string     `json:"public_url"`
	Key       string     `json:"key"`
	Item      media.Item `json:"item"`
}

// Pipeline turns local payloads into durable remote objects through the
// gateway's two-phase authorize+PUT protocol. Tasks are independent:
// one failing never aborts its siblings, and nothing is retried
// automatically.
type Pipeline struct {
	gw       *gateway.Client
	lib      *library.Store
	notifier *Notifier

	mu    sync.RWMutex
	tasks map[string]*Task
	order []string
}

func NewPipeline(gw *gateway.Client, lib *library.Store, notifier *Notifier) *Pipeline {
	return &Pipeline{
		gw:       gw,
		lib:      lib,
		notifier: notifier,
		tasks:    map[string]*Task{},
	}
}

// Upload runs one payload through both phases, blocking until the task
// reaches a terminal state. An unconfigured gateway fails before any
// task is queued so the caller can prompt for setup instead of showing
// a dead queue entry.
func (p *Pipeline) Upload(ctx context.Context, filename, contentType string, size int64, payload io.Reader) (Result, error) {
	if err := p.gw.Configured(); err != nil {
		return Result{}, err
	}

	task := p.register(filename, contentType, size)

	p.transition(task.ID, StateUploading, "")

	auth, err := p.gw.AuthorizeUpload(ctx, filename, contentType, size)
	if err != nil {
		aerr := &AuthorizeError{Err: err}
		p.fail(task.ID, aerr)
		return Result{}, aerr
	}

	err = p.gw.PutObject(ctx, auth.UploadURL, contentType, payload, size, func(pct float64) {
		p.setProgress(task.ID, pct)
	})
	if err != nil {
		terr := &TransferError{Err: err}
		p.fail(task.ID, terr)
		return Result{}, terr
	}

	p.finish(task.ID)

	item := itemFromUpload(auth, filename, contentType, size)
	if err := p.lib.Add(item); err != nil {
		// The object is durable either way; an id collision only means
		// the library entry wasn't created.
		slog.Error("Uploaded object could not be added to library",
			slog.String("key", auth.Key), slog.String("stack", err.Error()))
	}

	return Result{PublicURL: auth.PublicURL, Key: auth.Key, Item: item}, nil
}

// Tasks lists the queue newest first, terminal entries included until
// pruned.
func (p *Pipeline) Tasks() []Task {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Task, 0, len(p.order))
	for i := len(p.order) - 1; i >= 0; i-- {
		out = append(out, *p.tasks[p.order[i]])
	}
	return out
}

// Prune drops terminal tasks that finished before the retention window.
func (p *Pipeline) Prune(retention time.Duration) int {
	cutoff := time.Now().Add(-retention)

	p.mu.Lock()
	defer p.mu.Unlock()

	var kept []string
	removed := 0
	for _, id := range p.order {
		task := p.tasks[id]
		if task.State.Terminal() && task.FinishedAt.Before(cutoff) {
			delete(p.tasks, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	p.order = kept
	return removed
}

func (p *Pipeline) register(filename, contentType string, size int64) Task {
	task := Task{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		State:       StatePending,
		StartedAt:   time.Now(),
	}

	p.mu.Lock()
	p.tasks[task.ID] = &task
	p.order = append(p.order, task.ID)
	p.mu.Unlock()

	p.broadcast(task)
	return task
}

func (p *Pipeline) transition(id string, state State, detail string) {
	p.mu.Lock()
	task, ok := p.tasks[id]
	if !ok || task.State.Terminal() {
		p.mu.Unlock()
		return
	}
	task.State = state
	task.ErrorDetail = detail
	if state.Terminal() {
		task.FinishedAt = time.Now()
	}
	snapshot := *task
	p.mu.Unlock()

	p.broadcast(snapshot)
}

func (p *Pipeline) setProgress(id string, pct float64) {
	p.mu.Lock()
	task, ok := p.tasks[id]
	if !ok || task.State != StateUploading || pct <= task.Progress {
		p.mu.Unlock()
		return
	}
	if pct > 100 {
		pct = 100
	}
	task.Progress = pct
	snapshot := *task
	p.mu.Unlock()

	p.broadcast(snapshot)
}

func (p *Pipeline) finish(id string) {
	p.setProgress(id, 100)
	p.transition(id, StateDone, "")
}

func (p *Pipeline) fail(id string, cause error) {
	p.transition(id, StateError, cause.Error())

	p.mu.RLock()
	task, ok := p.tasks[id]
	var filename string
	if ok {
		filename = task.Filename
	}
	p.mu.RUnlock()
	if !ok {
		return
	}

	slog.Error("Upload failed", slog.String("filename", filename), slog.String("stack", cause.Error()))
	p.notifier.UploadFailed(filename, cause)
}

func (p *Pipeline) broadcast(task Task) {
	jsonTask, _ := json.Marshal(task)
	events.Publish(events.StreamUploads, jsonTask)
}

// itemFromUpload classifies the finished object once, at success time,
// from the declared content-type family. Image uploads double as their
// own thumbnail.
func itemFromUpload(auth gateway.Authorization, filename, contentType string, size int64) media.Item {
	mediaType := media.ClassifyContentType(contentType)

	thumbnail := defaultVideoThumb
	duration := "00:00"
	switch mediaType {
	case media.TypeAudio:
		thumbnail = defaultAudioThumb
	case media.TypeImage:
		thumbnail = auth.PublicURL
		duration = "RAW"
	}

	now := time.Now()
	return media.Item{
		ID:        uuid.NewString(),
		Title:     strings.TrimSuffix(filename, filepath.Ext(filename)),
		Artist:    "CLOUD UPLOAD",
		SourceURL: auth.PublicURL,
		Thumbnail: thumbnail,
		Duration:  duration,
		Tags:      media.Tags{strings.ToUpper(string(mediaType)), "CLOUD"},
		MediaType: mediaType,
		Origin:    media.OriginObjectStore,
		SizeBytes: size,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
