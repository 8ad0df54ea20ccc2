package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"visualdeck/media"
	"visualdeck/utils"
)

// ErrNotConfigured is returned when no gateway URL has been set yet.
// Upload and import surfaces treat it as a blocking prompt while the
// sync engine quietly skips its work.
var ErrNotConfigured = errors.New("no storage gateway URL configured")

// SettingsSource hands out the current gateway base URL. The client
// resolves it per request so configuration updates apply immediately.
type SettingsSource interface {
	GatewayURL() (string, error)
}

// Client speaks the storage gateway's HTTP contract: presigned upload
// authorization, direct PUT to object storage, and the single tracks
// record holding the whole library.
type Client struct {
	settings SettingsSource
	http     *http.Client
}

func NewClient(settings SettingsSource) *Client {
	return &Client{
		settings: settings,
		http:     utils.NewHTTPClient(),
	}
}

// Configured reports whether upload and sync calls can proceed at all,
// returning ErrNotConfigured without touching the network when no base
// URL has been set.
func (c *Client) Configured() error {
	_, err := c.base()
	return err
}

func (c *Client) base() (string, error) {
	raw, err := c.settings.GatewayURL()
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", ErrNotConfigured
	}
	return strings.TrimSuffix(raw, "/"), nil
}

type authorizeRequest struct {
	Filename string `json:"filename"`
	FileType string `json:"fileType"`
	Size     int64  `json:"size"`
}

// Authorization is the gateway's response to an upload request: a
// short-lived presigned PUT target plus the durable public location.
type Authorization struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

func (c *Client) AuthorizeUpload(ctx context.Context, filename, fileType string, size int64) (Authorization, error) {
	var auth Authorization

	base, err := c.base()
	if err != nil {
		return auth, err
	}

	payload, err := json.Marshal(authorizeRequest{Filename: filename, FileType: fileType, Size: size})
	if err != nil {
		return auth, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/authorize-upload", bytes.NewReader(payload))
	if err != nil {
		return auth, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return auth, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return auth, fmt.Errorf("authorize rejected: %d %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(res.Body).Decode(&auth); err != nil {
		return auth, fmt.Errorf("failed to parse authorize response: %w", err)
	}

	if auth.UploadURL == "" {
		return auth, errors.New("gateway returned no upload URL, check its bucket and key configuration")
	}

	return auth, nil
}

// PutObject streams the payload straight to the presigned URL with the
// same content type declared during authorization. onProgress receives
// percentages in [0,100] and is never called with a lower value than it
// has already seen.
func (c *Client) PutObject(ctx context.Context, uploadURL, contentType string, payload io.Reader, size int64, onProgress func(float64)) error {
	body := &progressReader{r: payload, total: size, fn: onProgress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return err
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("object storage rejected upload (status %d)", res.StatusCode)
	}

	return nil
}

// FetchLibrary loads the remote tracks record. An unconfigured gateway
// or an empty record both come back as an empty slice.
func (c *Client) FetchLibrary(ctx context.Context) ([]media.Item, error) {
	base, err := c.base()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/tracks", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("tracks fetch failed: %d", res.StatusCode)
	}

	var items []media.Item
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, err
	}

	return items, nil
}

// StoreLibrary replaces the remote tracks record with the given
// snapshot. Last writer wins over the whole collection.
func (c *Client) StoreLibrary(ctx context.Context, items []media.Item) error {
	base, err := c.base()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/tracks", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("tracks save failed: %d", res.StatusCode)
	}

	return nil
}
