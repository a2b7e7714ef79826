package domain

import "errors"

// ErrCyclicSchema is returned when a schema references itself, directly or through named types.
var ErrCyclicSchema = errors.New("cyclic schema")

// ErrUnknownKind is returned when a definition names a node kind that does not exist.
var ErrUnknownKind = errors.New("unknown node kind")

// ErrUnknownType is returned when a definition references a named type that was never declared.
var ErrUnknownType = errors.New("unknown type")

// ErrUnsupportedFormat is returned for input or output formats this tool does not handle.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrArtifactNotFound is returned when a generated artifact cannot be found in the store.
var ErrArtifactNotFound = errors.New("artifact not found")
