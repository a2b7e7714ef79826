package ports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunArtifactStoreContract runs a suite of tests to verify that an ArtifactStore
// implementation adheres to the defined interface contract.
func RunArtifactStoreContract(t *testing.T, store ArtifactStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	artifact := &domain.Artifact{
		Name: name,
		Entries: []domain.Entry{
			{Key: domain.Path{"foo"}, Format: "string", Required: true},
			{Key: domain.Path{"bar"}, AliasFor: domain.Path{"foo"}, Required: true},
		},
		Markdown:    "## Contract\n",
		JSONSchema:  json.RawMessage(`{"type":"object"}`),
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, artifact), "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, artifact.Name, loaded.Name)
		assert.Equal(t, artifact.Entries, loaded.Entries)
		assert.Equal(t, artifact.Markdown, loaded.Markdown)
		assert.JSONEq(t, string(artifact.JSONSchema), string(loaded.JSONSchema))
		assert.True(t, artifact.GeneratedAt.Equal(loaded.GeneratedAt))
	})

	t.Run("Isolation", func(t *testing.T) {
		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		loaded.Entries[0].Description = "mutated"

		again, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Empty(t, again.Entries[0].Description, "stored artifact must not be shared")
	})

	t.Run("List", func(t *testing.T) {
		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, name))

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, names, name)
	})

	t.Run("Load Missing", func(t *testing.T) {
		_, err := store.Load(ctx, "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})
}
