// Package coder serializes fixed-layout binary records to and from a byte
// stream.
//
// Scalars (fixed-width numbers and bools) are transferred as raw bytes in
// ByteOrder. Composites implement Codable and list their fields in wire
// order. On top of both sit the two aggregate encodings of the format:
// sequences, a uint32 count followed by the elements, and strings, a uint8
// length followed by the bytes. Extended sequences reserve the top bit of the
// count as a flag for an extra parameter byte.
//
// Every operation returns nil on success. After a failure the destination
// must not be used and the stream position is unspecified.
package coder

import (
	"bufio"
	"encoding/binary"
	"io"
)

// ByteOrder is the byte order of every scalar on the wire.
var ByteOrder binary.ByteOrder = binary.LittleEndian

// Encoder is the sink side of a stream. Write transfers all of p or fails.
type Encoder interface {
	io.Writer
	// Err reports the health of the underlying stream after the last write.
	Err() error
	Options() *Options
}

// Decoder is the source side of a stream. Read transfers all of p or fails.
type Decoder interface {
	io.Reader
	// More reports whether at least one more byte can be read.
	More() bool
	// Err reports the health of the underlying stream after the last read.
	// Running out of data is not an error here.
	Err() error
	Options() *Options
}

func NewEncoder(w io.Writer, opts ...Option) Encoder {
	return &encoder{w: w, opts: NewOptions(opts...)}
}

// NewDecoder reads from r. Readers that implement io.ByteScanner are used
// directly so the decoder never consumes bytes past what it decodes; other
// readers are wrapped in a bufio.Reader.
func NewDecoder(r io.Reader, opts ...Option) Decoder {
	s, ok := r.(io.ByteScanner)
	if !ok {
		br := bufio.NewReader(r)
		return &decoder{r: br, s: br, opts: NewOptions(opts...)}
	}
	return &decoder{r: r, s: s, opts: NewOptions(opts...)}
}

type encoder struct {
	w    io.Writer
	err  error
	opts *Options
}

func (e *encoder) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	e.err = err
	return n, err
}

func (e *encoder) Err() error {
	return e.err
}

func (e *encoder) Options() *Options {
	return e.opts
}

type decoder struct {
	r    io.Reader
	s    io.ByteScanner
	err  error
	opts *Options
}

func (d *decoder) Read(p []byte) (int, error) {
	n, err := io.ReadFull(d.r, p)
	d.setErr(err)
	return n, err
}

func (d *decoder) More() bool {
	if _, err := d.s.ReadByte(); err != nil {
		d.setErr(err)
		return false
	}
	if err := d.s.UnreadByte(); err != nil {
		d.setErr(err)
		return false
	}
	return true
}

func (d *decoder) setErr(err error) {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	d.err = err
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Options() *Options {
	return d.opts
}
