package library

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visualdeck/media"
)

// A mutation whose write fails must leave the in-memory snapshot and
// subscribers untouched.
func TestStore_FailedPersistLeavesSnapshotUntouched(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		mockDB.Close()
	})

	seeded := []media.Item{testItem("a", media.TypeVideo)}
	s := &Store{
		db:    sqlx.NewDb(mockDB, "sqlmock"),
		items: seeded,
	}

	notified := false
	s.Subscribe(func([]media.Item) {
		notified = true
	})

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM media_items").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = s.Add(testItem("b", media.TypeAudio))
	assert.Error(t, err)
	assert.False(t, notified)

	if !cmp.Equal(seeded, s.Snapshot()) {
		t.Error(cmp.Diff(seeded, s.Snapshot()))
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
