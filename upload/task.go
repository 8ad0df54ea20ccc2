package upload

import (
	"fmt"
	"time"
)

type State string

// pending exists only so observers can render a queue entry before the
// authorize call lands. done and error are final.
const (
	StatePending   State = "pending"
	StateUploading State = "uploading"
	StateDone      State = "done"
	StateError     State = "error"
)

func (s State) Terminal() bool {
	return s == StateDone || s == StateError
}

// Task is one transfer through the pipeline. Its id is local to the
// console and unrelated to the MediaItem a successful upload produces.
type Task struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	State       State     `json:"state"`
	Progress    float64   `json:"progress"`
	ErrorDetail string    `json:"error_detail,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at,omitempty"`
}

// AuthorizeError covers phase one failures: the gateway rejected or
// never answered the authorize call. No PUT is attempted after one.
type AuthorizeError struct {
	Err error
}

func (e *AuthorizeError) Error() string {
	return fmt.Sprintf("upload authorization failed: %v", e.Err)
}

func (e *AuthorizeError) Unwrap() error {
	return e.Err
}

// TransferError covers phase two failures: the direct PUT to object
// storage failed. The caller may resubmit the file as a new task.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("upload transfer failed: %v", e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
