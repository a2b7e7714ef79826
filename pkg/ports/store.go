package ports

import (
	"context"

	"github.com/aretw0/specdoc/pkg/domain"
)

// ArtifactStore defines the interface for persisting generated documentation.
type ArtifactStore interface {
	// Save persists the artifact under its name, replacing any previous one.
	Save(ctx context.Context, artifact *domain.Artifact) error

	// Load retrieves the artifact stored under name.
	// Returns domain.ErrArtifactNotFound if there is none.
	Load(ctx context.Context, name string) (*domain.Artifact, error)

	// Delete removes the artifact stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the names of stored artifacts, sorted.
	List(ctx context.Context) ([]string, error)
}
