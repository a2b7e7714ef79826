package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format names a definition file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the syntax from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// decodeRaw turns a document into generic maps, whatever its syntax.
func decodeRaw(data []byte, format Format) (map[string]any, error) {
	raw := make(map[string]any)
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return raw, nil
}

// decodeInto maps generic data onto a typed value. Unknown keys are rejected so that
// typos in a definition file surface instead of silently changing the output.
func decodeInto(raw any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(shorthandHook, boolTextHook),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

var definitionType = reflect.TypeOf(Definition{})

// shorthandHook expands "str" into {kind: scalar, cast: [str]} and "stage" into {type: stage}.
func shorthandHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	if to != definitionType && to != reflect.PointerTo(definitionType) {
		return data, nil
	}
	name := data.(string)
	if domain.Cast(name).Known() {
		return map[string]any{"kind": KindScalar, "cast": []string{name}}, nil
	}
	return map[string]any{"type": name}, nil
}

// boolTextHook keeps booleans readable in string fields: weak decoding alone
// would turn `values: [true, false]` into "1" and "0".
func boolTextHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Bool || to.Kind() != reflect.String {
		return data, nil
	}
	return strconv.FormatBool(data.(bool)), nil
}

// DecodeDocument parses a schema definition file.
func DecodeDocument(data []byte, format Format) (*Document, error) {
	raw, err := decodeRaw(data, format)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := decodeInto(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid schema definition: %w", err)
	}
	return &doc, nil
}

// DecodeDescriptions parses a description override file with a tags and a keys section.
func DecodeDescriptions(data []byte, format Format) (domain.DescriptionTable, error) {
	var table domain.DescriptionTable
	raw, err := decodeRaw(data, format)
	if err != nil {
		return table, err
	}
	if err := decodeInto(raw, &table); err != nil {
		return table, fmt.Errorf("invalid descriptions: %w", err)
	}
	return table, nil
}
