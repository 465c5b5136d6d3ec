package source

import (
	"context"
	"sync"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// Static implements a reach source with a fixed list of raw item names.
//
// Useful for testing and for runs whose item universe is known up front.
type Static struct {
	mu     sync.RWMutex
	rawIDs []string
}

var _ types.ReachSource = (*Static)(nil)

// NewStatic creates a static reach source.
//
// Parameters:
//   - rawIDs: Fixed list of raw item names
//
// Returns:
//   - *Static: Initialized static source
func NewStatic(rawIDs []string) *Static {
	s := &Static{}
	s.Update(rawIDs)

	return s
}

// ListRawIDs returns a copy of the configured raw item names.
func (s *Static) ListRawIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.rawIDs))
	copy(result, s.rawIDs)

	return result, nil
}

// Update replaces the raw item list, simulating a changed backend in tests.
func (s *Static) Update(rawIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rawIDs = make([]string, len(rawIDs))
	copy(s.rawIDs, rawIDs)
}
