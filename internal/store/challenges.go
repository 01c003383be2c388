// Package store owns the in-memory challenge, record and enrollment
// collections. Every read hands out copies.
package store

import (
	"errors"
	"sync"

	"betterBiteAPI/internal/types/challenge"
)

var ErrNotFound = errors.New("store: not found")

type ChallengeStore struct {
	mu         sync.RWMutex
	challenges []challenge.Challenge
}

func NewChallengeStore(seed ...challenge.Challenge) *ChallengeStore {
	return &ChallengeStore{challenges: append([]challenge.Challenge(nil), seed...)}
}

func (s *ChallengeStore) List() []challenge.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]challenge.Challenge(nil), s.challenges...)
}

func (s *ChallengeStore) Get(id string) (challenge.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.challenges {
		if c.ID == id {
			return c, nil
		}
	}
	return challenge.Challenge{}, ErrNotFound
}

func (s *ChallengeStore) Add(c challenge.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges = append(s.challenges, c)
}

// Remove drops the challenge only; its records and enrollments stay.
func (s *ChallengeStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.challenges {
		if c.ID == id {
			s.challenges = append(s.challenges[:i:i], s.challenges[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
