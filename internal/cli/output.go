package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/specdoc"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	FormatMarkdown   = "markdown"
	FormatJSON       = "json"
	FormatYAML       = "yaml"
	FormatJSONSchema = "jsonschema"
	FormatMermaid    = "mermaid"
)

// Formats lists every output format in help order.
var Formats = []string{FormatMarkdown, FormatJSON, FormatYAML, FormatJSONSchema, FormatMermaid}

// Render produces the generator's output in format.
func Render(ctx context.Context, gen *specdoc.Generator, format string) ([]byte, error) {
	switch format {
	case FormatMarkdown, "":
		md, err := gen.Markdown(ctx)
		return []byte(md), err
	case FormatJSONSchema:
		return gen.JSONSchema(ctx)
	case FormatMermaid:
		m, err := gen.Mermaid(ctx)
		return []byte(m), err
	case FormatJSON, FormatYAML:
		entries, err := gen.Entries(ctx)
		if err != nil {
			return nil, err
		}
		if format == FormatYAML {
			return yaml.Marshal(entries)
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %v)", format, Formats)
	}
}

// WriteOutput writes data to path, or to stdout when path is empty or "-".
// Missing parent directories are created.
func WriteOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Diff returns a unified diff from the file at path to want.
// An empty result means the file is up to date; a missing file diffs against nothing.
func Diff(path string, want []byte) (string, error) {
	have, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(have)),
		B:        difflib.SplitLines(string(want)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
}
