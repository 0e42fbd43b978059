// Package store holds the salon's mutable collections behind typed CRUD
// operations over a gorm database handle. The backing database is an
// in-memory SQLite by default, so records live only for the process
// lifetime.
package store

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// ErrNotFound is returned by update and delete operations that reference an
// unknown id. Callers are expected to check with errors.Is.
var ErrNotFound = errors.New("record not found")

// Store owns all entity collections. Ids are assigned from per-entity
// monotonic counters seeded from the highest id present at startup, so an
// id is never reused after a delete within one process.
type Store struct {
	db *gorm.DB

	mu     sync.Mutex
	lastID map[string]uint
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:     db,
		lastID: make(map[string]uint),
	}
}

// nextID reserves the next id for the given model. The caller must hold
// s.mu. The first reservation per model reads the current maximum from the
// database; after that the counter only grows, even across deletes.
func (s *Store) nextID(key string, model interface{}) (uint, error) {
	if _, seeded := s.lastID[key]; !seeded {
		var max uint
		if err := s.db.Model(model).Select("COALESCE(MAX(id), 0)").Scan(&max).Error; err != nil {
			return 0, fmt.Errorf("seed id counter for %s: %w", key, err)
		}
		s.lastID[key] = max
	}
	s.lastID[key]++
	return s.lastID[key], nil
}

// exists reports whether a row with the given id is present.
func (s *Store) exists(model interface{}, id uint) (bool, error) {
	var count int64
	if err := s.db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
