package store

import (
	"sync"

	"betterBiteAPI/internal/types/challenge"
)

type EnrollmentStore struct {
	mu          sync.RWMutex
	enrollments []challenge.Enrollment
}

func NewEnrollmentStore(seed ...challenge.Enrollment) *EnrollmentStore {
	return &EnrollmentStore{enrollments: append([]challenge.Enrollment(nil), seed...)}
}

// AddUnless appends e unless conflict reports true for e.UserID's current
// enrollments. The check and the append happen under one lock.
func (s *EnrollmentStore) AddUnless(e challenge.Enrollment, conflict func(userEnrollments []challenge.Enrollment) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	mine := make([]challenge.Enrollment, 0)
	for _, existing := range s.enrollments {
		if existing.UserID == e.UserID {
			mine = append(mine, existing)
		}
	}
	if conflict(mine) {
		return false
	}
	s.enrollments = append(s.enrollments, e)
	return true
}

func (s *EnrollmentStore) All() []challenge.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]challenge.Enrollment(nil), s.enrollments...)
}

func (s *EnrollmentStore) ByUser(userID string) []challenge.Enrollment {
	return s.filter(func(e challenge.Enrollment) bool { return e.UserID == userID })
}

func (s *EnrollmentStore) ByChallenge(challengeID string) []challenge.Enrollment {
	return s.filter(func(e challenge.Enrollment) bool { return e.ChallengeID == challengeID })
}

// UpdateStatus is a manual edit. Nothing in the service transitions
// enrollments on its own.
func (s *EnrollmentStore) UpdateStatus(id string, status challenge.EnrollmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.enrollments {
		if s.enrollments[i].ID == id {
			s.enrollments[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (s *EnrollmentStore) filter(keep func(challenge.Enrollment) bool) []challenge.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]challenge.Enrollment, 0)
	for _, e := range s.enrollments {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
