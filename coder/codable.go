package coder

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Encodable is a composite that writes its own fields in wire order.
type Encodable interface {
	WriteTo(Encoder) error
}

// Decodable is a composite that reads its own fields in wire order.
type Decodable interface {
	ReadFrom(Decoder) error
}

type Codable interface {
	Encodable
	Decodable
}

type Error uint8

const (
	ErrEndOfStream   Error = 1
	ErrShortRead     Error = 2
	ErrStringTooLong Error = 3
	ErrCountTooLarge Error = 4
	ErrTrailingData  Error = 5
)

func (e Error) Error() string {
	switch e {
	case ErrEndOfStream:
		return "end of stream"
	case ErrShortRead:
		return "short read"
	case ErrStringTooLong:
		return "string longer than 255 bytes"
	case ErrCountTooLarge:
		return "count too large"
	case ErrTrailingData:
		return "trailing data after record"
	default:
		return "unknown error"
	}
}

// FieldError reports which field of a composite failed. Path is built from
// the debug names of the enclosing fields, e.g. "wayPoints[2].position.x".
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func wrapField(name string, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		sep := "."
		if strings.HasPrefix(fe.Path, "[") {
			sep = ""
		}
		return &FieldError{Path: name + sep + fe.Path, Err: fe.Err}
	}
	return &FieldError{Path: name, Err: err}
}

func wrapIndex(i uint32, err error) error {
	return wrapField(fmt.Sprintf("[%d]", i), err)
}

// Marshal encodes ec into a new byte slice.
func Marshal(ec Encodable, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := ec.WriteTo(NewEncoder(&buf, opts...)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes b into dc. With WithStrict, bytes left over after dc
// has been read are an error.
func Unmarshal(b []byte, dc Decodable, opts ...Option) error {
	d := NewDecoder(bytes.NewReader(b), opts...)
	if err := dc.ReadFrom(d); err != nil {
		return err
	}
	if d.Options().Strict && d.More() {
		return ErrTrailingData
	}
	return nil
}
