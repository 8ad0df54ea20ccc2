package library

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"visualdeck/events"
	"visualdeck/media"
)

// ErrDuplicateID is returned when an Add collides with an existing
// item. The caller is expected to mint a fresh id and retry.
var ErrDuplicateID = errors.New("library: duplicate item id")

// Subscriber receives the full post-mutation snapshot. Subscribers are
// invoked synchronously in mutation order and must not call back into
// the store.
type Subscriber func(items []media.Item)

// Store is the ordered media library and the single source of truth for
// the rest of the console. Every mutation lands in the local database
// before it becomes visible, so readers never observe a half-applied
// change and the library survives restarts without a gateway.
type Store struct {
	db *sqlx.DB

	mu    sync.RWMutex
	items []media.Item
	subs  []Subscriber
}

// Open loads the persisted library into memory. An empty database
// yields an empty store; seeding is the caller's decision.
func Open(db *sqlx.DB) (*Store, error) {
	s := &Store{db: db}

	err := db.Select(&s.items, `
	  SELECT id, title, artist, source_url, thumbnail, duration, tags,
	         media_type, origin, size_bytes, dominant_colours, created_at, updated_at
	  FROM media_items
	  ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current ordering.
func (s *Store) Snapshot() []media.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotOf(s.items)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Add inserts the item at the front, most-recent-first. Ids must be
// unique across the collection.
func (s *Store) Add(item media.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return ErrDuplicateID
		}
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	next := make([]media.Item, 0, len(s.items)+1)
	next = append(next, item)
	next = append(next, s.items...)

	return s.commit(next)
}

// Remove drops the matching item. A missing id is a no-op, not an
// error.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, item := range s.items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	next := make([]media.Item, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	return s.commit(next)
}

// Update merges the patch into the matching item and refreshes its
// UpdatedAt. A missing id is a no-op.
func (s *Store) Update(id string, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, item := range s.items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	next := snapshotOf(s.items)
	patch.apply(&next[idx])
	next[idx].UpdatedAt = time.Now()

	return s.commit(next)
}

// ReplaceAll swaps in a whole new collection. Only the initial cloud
// load uses this.
func (s *Store) ReplaceAll(items []media.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(snapshotOf(items))
}

// commit persists the candidate ordering and, only once it is durable,
// makes it the visible snapshot and notifies subscribers. Callers hold
// s.mu.
func (s *Store) commit(next []media.Item) error {
	if err := s.persist(next); err != nil {
		return err
	}

	s.items = next

	snapshot := snapshotOf(next)
	for _, fn := range s.subs {
		fn(snapshot)
	}
	s.broadcast(snapshot)
	return nil
}

func (s *Store) persist(items []media.Item) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}

	var committed bool
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	// The library is small and the cloud record is replaced wholesale,
	// so local persistence mirrors that: one snapshot per transaction
	// keeps positions exact.
	if _, err := tx.Exec("DELETE FROM media_items"); err != nil {
		return err
	}

	for pos, item := range items {
		_, err := tx.Exec(`
		  INSERT INTO media_items
		  (id, position, title, artist, source_url, thumbnail, duration, tags,
		   media_type, origin, size_bytes, dominant_colours, created_at, updated_at)
		  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, pos, item.Title, item.Artist, item.SourceURL, item.Thumbnail,
			item.Duration, item.Tags, item.MediaType, item.Origin, item.SizeBytes,
			item.DominantColours, item.CreatedAt, item.UpdatedAt)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) broadcast(snapshot []media.Item) {
	jsonState, _ := json.Marshal(snapshot)
	events.Publish(events.StreamLibrary, jsonState)
}

func snapshotOf(items []media.Item) []media.Item {
	out := make([]media.Item, len(items))
	copy(out, items)
	return out
}
