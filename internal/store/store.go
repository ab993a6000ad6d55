// Package store is the persistent key-value boundary of the scoreboard.
package store

import (
	"errors"
	"sync"
)

// Fixed keys.
const (
	SnapshotKey     = "scoreboard_v5"
	TutorialSeenKey = "scoreboard_tutorial_seen"
)

var (
	ErrNotFound    = errors.New("store: key not found")
	ErrUnavailable = errors.New("store: storage unavailable")
)

// Store reads and writes opaque blobs by key.
type Store interface {
	// Get returns ErrNotFound when key was never written.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Memory is an in-process Store, used on the server side and in tests.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Flag reports whether the marker key is set. Any stored value counts.
func Flag(s Store, key string) bool {
	_, err := s.Get(key)
	return err == nil
}

// SetFlag writes a boolean marker.
func SetFlag(s Store, key string) error {
	return s.Set(key, []byte("true"))
}
