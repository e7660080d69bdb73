package coder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Scalar is the set of fixed-width values transferred as raw bytes.
type Scalar interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// Number is Scalar without bool.
type Number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// ReadScalar reads exactly the width of T into v. It fails with
// ErrEndOfStream without consuming anything when no data is left, and with
// ErrShortRead when the stream ends inside the value. Any bit pattern is
// accepted.
func ReadScalar[T Scalar](d Decoder, v *T) error {
	if !d.More() {
		if err := d.Err(); err != nil {
			return fmt.Errorf("read scalar: %w", err)
		}
		return ErrEndOfStream
	}
	if err := binary.Read(d, ByteOrder, v); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrShortRead
		}
		return fmt.Errorf("read scalar: %w", err)
	}
	return nil
}

// WriteScalar writes exactly the width of T.
func WriteScalar[T Scalar](e Encoder, v T) error {
	if err := binary.Write(e, ByteOrder, v); err != nil {
		return fmt.Errorf("write scalar: %w", err)
	}
	return nil
}

// ReadValue delegates to the composite's own field logic.
func ReadValue(d Decoder, v Decodable) error {
	return v.ReadFrom(d)
}

func WriteValue(e Encoder, v Encodable) error {
	return v.WriteTo(e)
}
