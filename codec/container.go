package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/namedmat/named"
)

// Container frame layout, version 1:
//
//	magic    4 bytes  "NMAT"
//	version  1 byte
//	flags    1 byte   bit0: payload is zstd-compressed
//	nameLen  1 byte
//	name     nameLen bytes, codec name
//	size     4 bytes, big-endian payload length
//	payload  size bytes
var containerMagic = [4]byte{'N', 'M', 'A', 'T'}

const (
	containerVersion = 1
	flagCompressed   = 1 << 0
	maxCodecNameLen  = 255
	maxPayloadSize   = 1 << 30
	opContainerWrite = "codec.Write"
	opContainerRead  = "codec.Read"
)

// options collects the Write knobs.
type options struct {
	compress bool
	level    zstd.EncoderLevel
}

// Option configures a container Write.
type Option func(*options)

// WithCompression toggles zstd compression of the payload. Off by default.
func WithCompression(on bool) Option {
	return func(o *options) { o.compress = on }
}

// WithLevel sets the zstd encoder level. Implies compression. The default is
// zstd.SpeedDefault.
func WithLevel(level zstd.EncoderLevel) Option {
	return func(o *options) {
		o.compress = true
		o.level = level
	}
}

// Write encodes doc with c and writes one self-describing frame to w.
//
// Implementation stages:
//  1. Marshal doc through the codec.
//  2. Optionally compress the payload with zstd at the configured level.
//  3. Emit magic, version, flags, codec name, payload length, payload.
//
// The frame records the codec name, so Read needs no prior knowledge of how
// the file was produced.
func Write(w io.Writer, c Codec, doc any, opts ...Option) error {
	if c == nil {
		return fmt.Errorf("%s: %w", opContainerWrite, ErrUnknownCodec)
	}
	name := c.Name()
	if len(name) == 0 || len(name) > maxCodecNameLen {
		return fmt.Errorf("%s: codec name %q: %w", opContainerWrite, name, ErrUnknownCodec)
	}
	cfg := options{level: zstd.SpeedDefault}
	for _, opt := range opts {
		opt(&cfg)
	}

	payload, err := c.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", opContainerWrite, err)
	}
	var flags byte
	if cfg.compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(cfg.level))
		if err != nil {
			return fmt.Errorf("%s: %w", opContainerWrite, err)
		}
		payload = enc.EncodeAll(payload, nil)
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%s: %w", opContainerWrite, err)
		}
		flags |= flagCompressed
	}

	header := make([]byte, 0, 4+1+1+1+len(name)+4)
	header = append(header, containerMagic[:]...)
	header = append(header, containerVersion, flags, byte(len(name)))
	header = append(header, name...)
	header = binary.BigEndian.AppendUint32(header, uint32(len(payload)))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%s: %w", opContainerWrite, err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("%s: %w", opContainerWrite, err)
	}
	return nil
}

// Read consumes one frame from r and returns the recorded codec name and the
// decompressed payload bytes.
//
// Errors: ErrBadMagic on a foreign stream, ErrBadVersion on a frame from a
// newer writer, ErrTruncated when the stream ends mid-frame.
func Read(r io.Reader) (codecName string, payload []byte, err error) {
	fixed := make([]byte, 7)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return "", nil, readErr(err)
	}
	if [4]byte(fixed[:4]) != containerMagic {
		return "", nil, fmt.Errorf("%s: %w", opContainerRead, ErrBadMagic)
	}
	if fixed[4] != containerVersion {
		return "", nil, fmt.Errorf("%s: version %d: %w", opContainerRead, fixed[4], ErrBadVersion)
	}
	flags := fixed[5]
	nameBuf := make([]byte, fixed[6])
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return "", nil, readErr(err)
	}
	sizeBuf := make([]byte, 4)
	if _, err := io.ReadFull(r, sizeBuf); err != nil {
		return "", nil, readErr(err)
	}
	size := binary.BigEndian.Uint32(sizeBuf)
	if size > maxPayloadSize {
		return "", nil, fmt.Errorf("%s: payload of %d bytes: %w", opContainerRead, size, ErrTruncated)
	}
	payload = make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return "", nil, readErr(err)
	}

	if flags&flagCompressed != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", opContainerRead, err)
		}
		defer dec.Close()
		payload, err = dec.DecodeAll(payload, nil)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", opContainerRead, err)
		}
	}
	return string(nameBuf), payload, nil
}

// WriteMatrix is the common path: flatten, encode, frame.
func WriteMatrix(w io.Writer, c Codec, m *named.Matrix, opts ...Option) error {
	doc, err := EncodeMatrix(m)
	if err != nil {
		return err
	}
	return Write(w, c, doc, opts...)
}

// ReadMatrix reads one matrix frame, resolving the codec by the recorded
// name and validating the document shape.
func ReadMatrix(r io.Reader) (*named.Matrix, error) {
	name, payload, err := Read(r)
	if err != nil {
		return nil, err
	}
	c, err := ByName(name)
	if err != nil {
		return nil, err
	}
	var doc MatrixDoc
	if err := c.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", opContainerRead, err)
	}
	return doc.Decode()
}

// WriteVector frames one named vector.
func WriteVector(w io.Writer, c Codec, v *named.Vector, opts ...Option) error {
	doc, err := EncodeVector(v)
	if err != nil {
		return err
	}
	return Write(w, c, doc, opts...)
}

// ReadVector reads one vector frame.
func ReadVector(r io.Reader) (*named.Vector, error) {
	name, payload, err := Read(r)
	if err != nil {
		return nil, err
	}
	c, err := ByName(name)
	if err != nil {
		return nil, err
	}
	var doc VectorDoc
	if err := c.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", opContainerRead, err)
	}
	return doc.Decode()
}

// readErr maps io.EOF family errors onto ErrTruncated, keeping the original
// cause in the chain.
func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %v: %w", opContainerRead, err, ErrTruncated)
	}
	return fmt.Errorf("%s: %w", opContainerRead, err)
}
