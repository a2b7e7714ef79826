package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/aretw0/specdoc/pkg/ports"
)

// Generator produces a fresh artifact from the current schema.
type Generator interface {
	Artifact(ctx context.Context) (*domain.Artifact, error)
}

// Publisher keeps the stored artifact in sync with its schema source.
type Publisher struct {
	Generator Generator
	Store     ports.ArtifactStore
	Streams   *StreamManager
	Metrics   *Metrics
	Logger    *slog.Logger

	// Locker, when set, serializes publication across replicas sharing Store.
	Locker  ports.DistributedLocker
	LockTTL time.Duration
}

// NewPublisher creates a publisher. Streams and Metrics may be shared with a Server.
func NewPublisher(gen Generator, store ports.ArtifactStore, streams *StreamManager, metrics *Metrics, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		Generator: gen,
		Store:     store,
		Streams:   streams,
		Metrics:   metrics,
		Logger:    logger,
		LockTTL:   30 * time.Second,
	}
}

// Publish generates the artifact once and saves it.
func (p *Publisher) Publish(ctx context.Context) (*domain.Artifact, error) {
	artifact, err := p.publish(ctx)
	if p.Metrics != nil {
		result, name := "ok", ""
		if err != nil {
			result = "error"
		}
		if artifact != nil {
			name = artifact.Name
			p.Metrics.Entries.WithLabelValues(name).Set(float64(len(artifact.Entries)))
		}
		p.Metrics.Publish.WithLabelValues(name, result).Inc()
	}
	if err != nil {
		return nil, err
	}

	if p.Streams != nil {
		p.Streams.Broadcast(artifact.Name)
	}
	p.Logger.Info("artifact published", "artifact", artifact.Name, "entries", len(artifact.Entries))
	return artifact, nil
}

func (p *Publisher) publish(ctx context.Context) (*domain.Artifact, error) {
	artifact, err := p.Generator.Artifact(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate artifact: %w", err)
	}

	if p.Locker != nil {
		unlock, err := p.Locker.Lock(ctx, artifact.Name, p.LockTTL)
		if err != nil {
			return artifact, fmt.Errorf("lock artifact %q: %w", artifact.Name, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				p.Logger.Warn("failed to release publish lock", "artifact", artifact.Name, "error", err)
			}
		}()
	}

	if err := p.Store.Save(ctx, artifact); err != nil {
		return artifact, fmt.Errorf("save artifact %q: %w", artifact.Name, err)
	}
	return artifact, nil
}

// Run publishes once, then follows changes.
func (p *Publisher) Run(ctx context.Context, changes <-chan struct{}) error {
	if _, err := p.Publish(ctx); err != nil {
		return err
	}
	p.Follow(ctx, changes)
	return nil
}

// Follow republishes on every signal from changes until ctx is done or changes
// is closed. Failed regenerations are logged and the previous artifact stays in place.
func (p *Publisher) Follow(ctx context.Context, changes <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			if _, err := p.Publish(ctx); err != nil {
				p.Logger.Error("republish failed", "error", err)
			}
		}
	}
}
