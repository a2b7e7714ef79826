package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/specdoc/pkg/adapters/memory"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadSchema(t *testing.T) {
	schema := &domain.Schema{Name: "tiny", Root: &domain.Root{}}
	loader := memory.NewLoader(schema)

	got, err := loader.LoadSchema(context.Background())
	require.NoError(t, err)
	assert.Same(t, schema, got)

	_, err = memory.NewLoader(nil).LoadSchema(context.Background())
	assert.Error(t, err)
}

func TestLoader_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loader := memory.NewLoader(&domain.Schema{Name: "v1", Root: &domain.Root{}})

	changes, err := loader.Watch(ctx)
	require.NoError(t, err)

	loader.Update(&domain.Schema{Name: "v2", Root: &domain.Root{}})
	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal")
	}

	got, err := loader.LoadSchema(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Name)

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-changes
		return !open
	}, time.Second, 10*time.Millisecond)
}
