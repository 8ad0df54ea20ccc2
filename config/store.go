package config

import (
	"database/sql"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

const gatewayKey = "gateway_url"

var ErrInvalidGatewayURL = errors.New("gateway URL must be fully qualified (http:// or https://)")

// Store persists console settings in the local database. The only
// setting today is the storage gateway base URL, which the upload
// pipeline and sync engine read on every request rather than caching,
// so an update takes effect immediately.
type Store struct {
	db *sqlx.DB

	mu       sync.Mutex
	onChange []func(gatewayURL string)
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// OnChange registers a callback fired after the gateway URL is updated.
func (s *Store) OnChange(fn func(gatewayURL string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// GatewayURL returns the configured gateway base URL, or an empty
// string if none has been set yet.
func (s *Store) GatewayURL() (string, error) {
	var value string
	err := s.db.Get(&value, "SELECT value FROM settings WHERE key = ?", gatewayKey)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetGatewayURL validates, normalizes and persists the gateway base URL,
// then notifies any registered listeners.
func (s *Store) SetGatewayURL(raw string) error {
	clean, err := NormalizeGatewayURL(raw)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
	  INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
	  ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		gatewayKey, clean, time.Now())
	if err != nil {
		return err
	}

	s.mu.Lock()
	listeners := make([]func(string), len(s.onChange))
	copy(listeners, s.onChange)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(clean)
	}
	return nil
}

// NormalizeGatewayURL rejects anything that isn't a fully qualified
// http(s) URL and strips a trailing slash so endpoint paths can be
// appended directly.
func NormalizeGatewayURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidGatewayURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidGatewayURL
	}
	return strings.TrimSuffix(raw, "/"), nil
}
