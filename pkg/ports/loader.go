package ports

import (
	"context"

	"github.com/aretw0/specdoc/pkg/domain"
)

// SchemaLoader defines how the generator retrieves the schema to document.
// This allows the source (definition file, DSL, memory) to be decoupled.
type SchemaLoader interface {
	// LoadSchema returns a freshly compiled schema.
	LoadSchema(ctx context.Context) (*domain.Schema, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
// This is typically used to regenerate the reference while a schema is being edited.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying schema changes.
	// It abstracts away the specific event details, signaling only that a reload is required.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
