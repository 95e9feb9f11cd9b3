package web

import (
	"sync"

	"github.com/google/uuid"
)

// report holds both rendered outputs for one profiled upload so the
// download links keep working after the result page is served.
type report struct {
	Name     string
	JSON     string
	Markdown string
}

type reportStore struct {
	mu      sync.RWMutex
	reports map[string]*report
}

func newReportStore() *reportStore {
	return &reportStore{reports: make(map[string]*report)}
}

func (s *reportStore) put(r *report) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.reports[id] = r
	s.mu.Unlock()
	return id
}

func (s *reportStore) get(id string) (*report, bool) {
	s.mu.RLock()
	r, ok := s.reports[id]
	s.mu.RUnlock()
	return r, ok
}
