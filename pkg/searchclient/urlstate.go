package searchclient

import (
	"net/url"
	"sync"
)

// URLState reads and writes the navigable URL's query parameters. The
// surrounding application owns the real address bar; the controller only
// consumes this narrow contract.
type URLState interface {
	Read() url.Values
	Write(url.Values)
}

// MemoryURLState is an in-memory URLState, useful for tests and embedders
// without a real address bar.
type MemoryURLState struct {
	mu     sync.Mutex
	values url.Values
}

// NewMemoryURLState creates a MemoryURLState seeded with the given values
func NewMemoryURLState(values url.Values) *MemoryURLState {
	if values == nil {
		values = url.Values{}
	}
	return &MemoryURLState{values: copyValues(values)}
}

// Read returns a copy of the current query parameters
func (s *MemoryURLState) Read() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyValues(s.values)
}

// Write replaces the current query parameters
func (s *MemoryURLState) Write(values url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = copyValues(values)
}

// Encoded returns the current parameters in canonical ?q=...&type=... form,
// or the empty string when no parameters are set.
func (s *MemoryURLState) Encoded() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return ""
	}
	return "?" + s.values.Encode()
}

func copyValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vals := range values {
		out[key] = append([]string(nil), vals...)
	}
	return out
}
