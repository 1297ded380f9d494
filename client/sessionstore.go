package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/taskmaster/taskmaster/domain"
)

// SessionStore persists the signed-in session across application restarts.
// Load returns (nil, nil) when nothing is stored.
type SessionStore interface {
	Load() (*domain.Session, error)
	Save(session *domain.Session) error
	Clear() error
}

var (
	sessionBucket = []byte("auth")
	sessionKey    = []byte("session")
)

// BoltSessionStore keeps the session in a local BoltDB file, the durable
// device-side storage an embedding app points at its data directory.
type BoltSessionStore struct {
	db *bolt.DB
}

func NewBoltSessionStore(path string) (*BoltSessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &BoltSessionStore{db: db}, nil
}

func (s *BoltSessionStore) Load() (*domain.Session, error) {
	var session *domain.Session
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(sessionBucket).Get(sessionKey)
		if len(raw) == 0 {
			return nil
		}
		var decoded domain.Session
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return err
		}
		session = &decoded
		return nil
	})
	return session, err
}

func (s *BoltSessionStore) Save(session *domain.Session) error {
	if session == nil {
		return s.Clear()
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put(sessionKey, payload)
	})
}

func (s *BoltSessionStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete(sessionKey)
	})
}

func (s *BoltSessionStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// MemorySessionStore holds the session in memory only. Used in tests and by
// embedders that opt out of persistence.
type MemorySessionStore struct {
	mu      sync.Mutex
	session *domain.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, nil
	}
	copied := *s.session
	return &copied, nil
}

func (s *MemorySessionStore) Save(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session == nil {
		s.session = nil
		return nil
	}
	copied := *session
	s.session = &copied
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
