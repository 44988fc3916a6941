package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Package-wide sentinel errors.
var (
	// ErrUnknownCodec marks a ByName lookup or container read naming a codec
	// this build does not ship.
	ErrUnknownCodec = errors.New("codec: unknown codec name")

	// ErrShapeMismatch marks a decoded document whose declared shape does not
	// match its data length.
	ErrShapeMismatch = errors.New("codec: document shape does not match data length")

	// ErrNilDocument marks a nil document or operand passed to an encoder.
	ErrNilDocument = errors.New("codec: nil document")

	// ErrBadMagic marks a container stream that does not start with the
	// container magic.
	ErrBadMagic = errors.New("codec: bad container magic")

	// ErrBadVersion marks a container version this build cannot read.
	ErrBadVersion = errors.New("codec: unsupported container version")

	// ErrTruncated marks a container stream that ends mid-frame.
	ErrTruncated = errors.New("codec: truncated container")
)

// Codec serializes one document to bytes and back. Implementations must be
// stateless and safe for concurrent use.
type Codec interface {
	// Marshal encodes v into a self-contained byte slice.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v, which must be a pointer.
	Unmarshal(data []byte, v any) error

	// Name returns the codec's registry name, stable across releases.
	Name() string
}

// JSON is the default codec.
type JSON struct{}

// Marshal implements Codec.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal implements Codec.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name implements Codec.
func (JSON) Name() string { return "json" }

// YAML serializes documents as YAML, for hand-edited fixtures and configs.
type YAML struct{}

// Marshal implements Codec.
func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal implements Codec.
func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Name implements Codec.
func (YAML) Name() string { return "yaml" }

// ByName returns the codec registered under name.
//
// Returns ErrUnknownCodec for anything other than "json" or "yaml".
func ByName(name string) (Codec, error) {
	switch name {
	case "json":
		return JSON{}, nil
	case "yaml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("codec.ByName: %q: %w", name, ErrUnknownCodec)
	}
}
