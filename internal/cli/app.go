// Package cli holds the command implementations shared by the specdoc binary.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/specdoc"
	"github.com/aretw0/specdoc/internal/config"
	"github.com/aretw0/specdoc/internal/logging"
	"github.com/aretw0/specdoc/pkg/adapters/file"
	"github.com/aretw0/specdoc/pkg/adapters/memory"
	"github.com/aretw0/specdoc/pkg/adapters/redis"
	"github.com/aretw0/specdoc/pkg/ports"
)

// NewLogger builds the command logger. Logs go to stderr so stdout stays clean for output.
func NewLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(os.Stderr, level, cfg.LogJSON), nil
}

// NewGenerator builds a generator over the configured schema file.
func NewGenerator(cfg *config.Config, logger *slog.Logger) (*specdoc.Generator, error) {
	if cfg.Schema == "" {
		return nil, fmt.Errorf("no schema file configured")
	}
	loaderOpts := []file.Option{file.WithLogger(logger)}
	if cfg.Descriptions != "" {
		loaderOpts = append(loaderOpts, file.WithDescriptionsFile(cfg.Descriptions))
	}

	opts := []specdoc.Option{
		specdoc.WithLoader(file.New(cfg.Schema, loaderOpts...)),
		specdoc.WithLogger(logger),
	}
	if d := cfg.Document; d != (config.Document{}) {
		opts = append(opts, specdoc.WithDocumentOverrides(specdoc.Document{
			Title:  d.Title,
			Intro:  d.Intro,
			Footer: d.Footer,
		}))
	}
	return specdoc.New(cfg.Schema, opts...)
}

// Backend is an opened artifact store plus its optional lock service.
type Backend struct {
	Store  ports.ArtifactStore
	Locker ports.DistributedLocker
	Kind   string
	closer io.Closer
}

// Close releases the backend's connections.
func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// OpenBackend picks the artifact store: redis when an address is configured,
// the file store when a directory is configured, memory otherwise.
func OpenBackend(cfg *config.Config) *Backend {
	switch {
	case cfg.Redis.Addr != "":
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		return &Backend{
			Store:  store,
			Locker: redis.NewLocker(store.Client(), cfg.Redis.Prefix),
			Kind:   "redis",
			closer: store,
		}
	case cfg.Store != "":
		return &Backend{Store: file.NewStore(cfg.Store), Kind: "file"}
	default:
		return &Backend{Store: memory.NewStore(), Kind: "memory"}
	}
}
