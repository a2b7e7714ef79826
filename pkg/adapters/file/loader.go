package file

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/specdoc/internal/compiler"
	"github.com/aretw0/specdoc/internal/validator"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/fsnotify/fsnotify"
)

// Loader implements ports.SchemaLoader and ports.Watchable over definition files.
// The schema is recompiled on every LoadSchema call, so edits are picked up.
type Loader struct {
	path         string
	descriptions []string
	parser       *compiler.Parser
	logger       *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithDescriptionsFile layers a flat "key: text" file over the schema's own
// descriptions. Later files win.
func WithDescriptionsFile(path string) Option {
	return func(l *Loader) {
		if path != "" {
			l.descriptions = append(l.descriptions, path)
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loader for the schema definition at path.
func New(path string, opts ...Option) *Loader {
	l := &Loader{
		path:   path,
		parser: compiler.NewParser(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the schema definition path.
func (l *Loader) Path() string {
	return l.path
}

// LoadSchema reads, compiles and validates the schema.
func (l *Loader) LoadSchema(ctx context.Context) (*domain.Schema, error) {
	data, format, err := readFile(l.path)
	if err != nil {
		return nil, err
	}
	schema, err := l.parser.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	if len(l.descriptions) > 0 {
		overrides := make([]domain.DescriptionTable, 0, len(l.descriptions))
		for _, path := range l.descriptions {
			data, format, err := readFile(path)
			if err != nil {
				return nil, err
			}
			table, err := compiler.DecodeDescriptions(data, format)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			overrides = append(overrides, table)
		}
		merged, err := compiler.MergeDescriptions(schema.Descriptions.Table(), overrides...)
		if err != nil {
			return nil, err
		}
		schema.Descriptions = domain.NewDescriptions(merged)
	}

	if err := validator.ValidateSchema(schema.Root); err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	l.logger.Debug("schema loaded",
		"path", l.path,
		"keys", len(schema.Root.Fields),
		"descriptions", schema.Descriptions.Len())
	return schema, nil
}

func readFile(path string) ([]byte, compiler.Format, error) {
	format, err := compiler.FormatFromPath(path)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, format, nil
}

// Watch implements ports.Watchable.
// Directories are watched rather than files, so atomic saves by editors are seen.
func (l *Loader) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, path := range append([]string{l.path}, l.descriptions...) {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch directory: %w", err)
		}
	}

	ch := make(chan struct{}, 1)

	go func() {
		defer close(ch)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil || !files[abs] {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				l.logger.Debug("schema file changed", "event", event.Op.String(), "file", event.Name)
				select {
				case ch <- struct{}{}:
				default:
					// A reload is already pending.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.logger.Error("file watcher error", "err", err)
			}
		}
	}()

	l.logger.Info("watching schema files", "path", l.path)
	return ch, nil
}
