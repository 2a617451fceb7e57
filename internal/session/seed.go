// Package session owns the sampling seed for an interactive session.
package session

import "sync"

// InitialSeed is the seed every fresh session starts from, so the first
// page a user sees is the same across restarts.
const InitialSeed = 42

// Seed is an advance-only counter. Read it once per render pass and reuse
// that value for the whole pass; re-reading mid-pass could mix two samples.
type Seed struct {
	mu   sync.Mutex
	seed int64
}

func New() *Seed {
	return &Seed{seed: InitialSeed}
}

// Current returns the seed for the next render pass.
func (s *Seed) Current() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// Advance moves to the next seed. Only the refresh action calls this;
// the seed never decrements or resets.
func (s *Seed) Advance() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed++
	return s.seed
}
