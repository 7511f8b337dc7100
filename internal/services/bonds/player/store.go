package player

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
	"github.com/louisbranch/playerbonds/internal/services/bonds/domain/bond"
)

// MemoryStore serves bonds for player records held in memory, keyed by
// player ID. It is not safe for concurrent use.
type MemoryStore struct {
	records map[string]*Record
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]*Record{}}
}

// Put registers rec under playerID, replacing any previous record.
func (s *MemoryStore) Put(playerID string, rec *Record) {
	s.records[strings.TrimSpace(playerID)] = rec
}

// Record returns the record held for playerID.
func (s *MemoryStore) Record(playerID string) (*Record, bool) {
	rec, ok := s.records[strings.TrimSpace(playerID)]
	return rec, ok
}

// Bonds returns the bonds of playerID.
func (s *MemoryStore) Bonds(_ context.Context, playerID string) (bond.List, error) {
	rec, err := s.lookup(playerID)
	if err != nil {
		return nil, err
	}
	return rec.Bonds(), nil
}

// SaveBonds replaces the bonds of playerID.
func (s *MemoryStore) SaveBonds(_ context.Context, playerID string, list bond.List) error {
	rec, err := s.lookup(playerID)
	if err != nil {
		return err
	}
	rec.SetBonds(list)
	return nil
}

func (s *MemoryStore) lookup(playerID string) (*Record, error) {
	rec, ok := s.records[strings.TrimSpace(playerID)]
	if !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodeNotFound,
			fmt.Sprintf("player %q not found", playerID),
			map[string]string{"PlayerID": playerID},
		)
	}
	return rec, nil
}
