package cohort

import "sync/atomic"

// Store owns the currently published index. Rebuilds happen out-of-band
// and are published with a single pointer swap, so readers always see
// either the previous complete index or the new one, never a partial
// build.
type Store struct {
	current atomic.Pointer[Index]
	version atomic.Int64
}

// NewStore returns an empty store. Current returns nil until the first
// Publish.
func NewStore() *Store {
	return &Store{}
}

// Publish atomically replaces the current index and bumps the version.
func (s *Store) Publish(idx *Index) {
	s.current.Store(idx)
	s.version.Add(1)
}

// Current returns the published index, or nil when none has been built.
func (s *Store) Current() *Index {
	return s.current.Load()
}

// Version returns the number of successful publishes.
func (s *Store) Version() int64 {
	return s.version.Load()
}
