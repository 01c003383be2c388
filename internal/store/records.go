package store

import (
	"sync"

	"betterBiteAPI/internal/types/challenge"
)

// RecordStore is append-only.
type RecordStore struct {
	mu      sync.RWMutex
	records []challenge.Record
}

func NewRecordStore(seed ...challenge.Record) *RecordStore {
	return &RecordStore{records: append([]challenge.Record(nil), seed...)}
}

func (s *RecordStore) Append(r challenge.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

func (s *RecordStore) ByChallenge(challengeID string) []challenge.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]challenge.Record, 0)
	for _, r := range s.records {
		if r.ChallengeID == challengeID {
			out = append(out, r)
		}
	}
	return out
}

func (s *RecordStore) All() []challenge.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]challenge.Record(nil), s.records...)
}
