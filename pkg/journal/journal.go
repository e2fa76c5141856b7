package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var bucketPending = []byte("pending_blobs")

// Entry a blob that was uploaded but is not yet known to be linked to a Video row
type Entry struct {
	BlobName   string    `json:"blob_name"`
	VideoTitle string    `json:"video_title"`
	StartedAt  time.Time `json:"started_at"`
}

// Journal durable record of in-flight video ingests
type Journal struct {
	db *bbolt.DB
}

// Open opens (or creates) the journal file at path
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPending)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialising journal: %w", err)
	}

	return &Journal{db: db}, nil
}

// Begin records blobName before its upload starts
func (j *Journal) Begin(blobName, videoTitle string) error {
	data, err := json.Marshal(Entry{BlobName: blobName, VideoTitle: videoTitle, StartedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return j.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPending).Put([]byte(blobName), data)
	})
}

// Commit clears the entry once the blob is linked or removed
func (j *Journal) Commit(blobName string) error {
	return j.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPending).Delete([]byte(blobName))
	})
}

// Pending entries started more than olderThan ago
func (j *Journal) Pending(olderThan time.Duration) ([]Entry, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	var entries []Entry

	err := j.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPending).ForEach(func(_, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			if !e.StartedAt.After(cutoff) {
				entries = append(entries, e)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	return entries, nil
}

// Close closes the journal file
func (j *Journal) Close() error {
	return j.db.Close()
}
