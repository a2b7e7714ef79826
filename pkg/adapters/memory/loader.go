package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/specdoc/pkg/domain"
)

// Loader implements ports.SchemaLoader and ports.Watchable over a schema held in memory.
// Safe for concurrent use.
type Loader struct {
	mu       sync.RWMutex
	schema   *domain.Schema
	watchers []chan struct{}
}

// NewLoader creates a loader serving the given schema.
func NewLoader(schema *domain.Schema) *Loader {
	return &Loader{schema: schema}
}

// LoadSchema returns the current schema.
func (l *Loader) LoadSchema(ctx context.Context) (*domain.Schema, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.schema == nil {
		return nil, fmt.Errorf("memory loader: no schema")
	}
	return l.schema, nil
}

// Update replaces the schema and signals every watcher.
func (l *Loader) Update(schema *domain.Schema) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.schema = schema
	for _, ch := range l.watchers {
		select {
		case ch <- struct{}{}:
		default:
			// A reload is already pending.
		}
	}
}

// Watch returns a channel signaled after each Update until ctx is done.
func (l *Loader) Watch(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)

	l.mu.Lock()
	l.watchers = append(l.watchers, ch)
	l.mu.Unlock()

	go func() {
		<-ctx.Done()
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, w := range l.watchers {
			if w == ch {
				l.watchers = append(l.watchers[:i], l.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}
