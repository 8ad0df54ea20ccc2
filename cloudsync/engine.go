package cloudsync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"visualdeck/gateway"
	"visualdeck/library"
	"visualdeck/media"
)

// DefaultWindow is the quiet period after the last library mutation
// before a replication save fires.
const DefaultWindow = 2 * time.Second

// Engine replicates the library to the gateway's tracks record on a
// best-effort basis. The cloud copy is a cross-session convenience, not
// a source of truth: save failures are logged and dropped, never
// retried and never surfaced. Concurrent sessions clobber each other
// wholesale; that is the accepted model.
type Engine struct {
	gw    *gateway.Client
	lib   *library.Store
	sched *scheduler

	mu     sync.Mutex
	latest []media.Item
}

func New(gw *gateway.Client, lib *library.Store, window time.Duration) *Engine {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Engine{
		gw:    gw,
		lib:   lib,
		sched: newScheduler(window),
	}
}

// Notify records the newest snapshot and (re)arms the debounce window.
// Intermediate snapshots inside the window are never transmitted.
func (e *Engine) Notify(items []media.Item) {
	e.mu.Lock()
	e.latest = items
	e.mu.Unlock()

	e.sched.Arm(e.flush)
}

// GatewayChanged primes a freshly configured gateway with the current
// library so the first remote record isn't empty.
func (e *Engine) GatewayChanged(string) {
	e.Notify(e.lib.Snapshot())
}

func (e *Engine) flush() {
	e.mu.Lock()
	items := e.latest
	e.mu.Unlock()

	err := e.gw.StoreLibrary(context.Background(), items)
	if errors.Is(err, gateway.ErrNotConfigured) {
		slog.Debug("Skipping library replication, gateway not configured")
		return
	}
	if err != nil {
		slog.Error("Failed to replicate library to gateway", slog.String("stack", err.Error()))
		return
	}
	slog.Debug("Replicated library to gateway", slog.Int("items", len(items)))
}

// Load fetches the remote record once at startup. A present, non-empty
// record replaces the local library; anything else keeps the existing
// contents. Failures here are silent and non-fatal.
func (e *Engine) Load(ctx context.Context) {
	items, err := e.gw.FetchLibrary(ctx)
	if errors.Is(err, gateway.ErrNotConfigured) {
		slog.Debug("Skipping initial library load, gateway not configured")
		return
	}
	if err != nil {
		slog.Warn("Failed to load library from gateway, keeping local contents", slog.String("stack", err.Error()))
		return
	}
	if len(items) == 0 {
		return
	}

	if err := e.lib.ReplaceAll(items); err != nil {
		slog.Error("Failed to apply cloud library locally", slog.String("stack", err.Error()))
		return
	}
	slog.Info("Loaded library from gateway", slog.Int("items", len(items)))
}
