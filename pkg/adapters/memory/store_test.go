package memory_test

import (
	"testing"

	"github.com/aretw0/specdoc/pkg/adapters/memory"
	"github.com/aretw0/specdoc/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunArtifactStoreContract(t, store)
}
