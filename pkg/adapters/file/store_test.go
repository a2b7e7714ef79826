package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/specdoc/pkg/adapters/file"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/aretw0/specdoc/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ports.RunArtifactStoreContract(t, store)
}

func TestFileStore_NoLeftovers(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, &domain.Artifact{Name: "travis", Markdown: "v"}))
	}

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "travis.json", files[0].Name())
}

func TestFileStore_InvalidName(t *testing.T) {
	store := file.NewStore(t.TempDir())
	err := store.Save(context.Background(), &domain.Artifact{Name: filepath.Join("..", "escape")})
	assert.ErrorContains(t, err, "invalid artifact name")
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.NewStore(filepath.Join(t.TempDir(), "nope"))
	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
