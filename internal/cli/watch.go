package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/specdoc"
)

// Watch regenerates output in format whenever the schema changes, until ctx is done.
// A failed regeneration is logged and the previous output is left untouched.
func Watch(ctx context.Context, gen *specdoc.Generator, format, output string, stdout io.Writer, logger *slog.Logger) error {
	changes, err := gen.Watch(ctx)
	if err != nil {
		return err
	}

	generate := func() {
		data, err := Render(ctx, gen, format)
		if err != nil {
			logger.Error("regeneration failed", "error", err)
			return
		}
		if err := WriteOutput(stdout, output, data); err != nil {
			logger.Error("write failed", "error", err)
			return
		}
		logger.Info("output regenerated", "format", format, "output", output)
	}

	generate()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			generate()
		}
	}
}
