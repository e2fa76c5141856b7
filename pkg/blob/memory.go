package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MemoryStore in-process Store (storage.driver=memory); contents are lost on exit
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string

	// UploadErr, when set, is returned by Upload
	UploadErr error
	// DeleteErr, when set, is returned by Delete
	DeleteErr error
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (s *MemoryStore) Upload(_ context.Context, name string, r io.Reader, _ int64, contentType string) error {
	if s.UploadErr != nil {
		return s.UploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = data
	s.types[name] = contentType
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[name]; !ok {
		return ErrNotFound
	}
	delete(s.objects, name)
	delete(s.types, name)
	return nil
}

func (s *MemoryStore) URL(name string) string {
	return "https://memory.local/videos/" + name
}

func (s *MemoryStore) SignedURL(_ context.Context, name string, ttl time.Duration) (string, error) {
	return fmt.Sprintf("%s?se=%d&sig=test", s.URL(name), time.Now().Add(ttl).Unix()), nil
}

func (s *MemoryStore) Open(_ context.Context, name string) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &Object{
		Body:        io.NopCloser(bytes.NewReader(data)),
		Size:        int64(len(data)),
		ContentType: s.types[name],
	}, nil
}

// Has reports whether name is stored
func (s *MemoryStore) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[name]
	return ok
}

// Len number of stored objects
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
