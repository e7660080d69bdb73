// Package grpccodec registers a gRPC codec that carries coder records in
// their binary file layout instead of protobuf.
//
// Select it per call with grpc.CallContentSubtype(grpccodec.Name), or on a
// server with grpc.ForceServerCodec(grpccodec.Codec{}) when every method uses
// records.
package grpccodec

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"sutext.github.io/difio/coder"
)

// Name is the content subtype the codec registers under.
const Name = "dif"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec implements encoding.Codec for values that implement coder.Codable.
// Decoding is strict: a message with bytes left after the record is
// rejected.
type Codec struct {
	Options []coder.Option
}

func (c Codec) Marshal(v any) ([]byte, error) {
	ec, ok := v.(coder.Encodable)
	if !ok {
		return nil, fmt.Errorf("grpccodec: %T does not implement coder.Encodable", v)
	}
	return coder.Marshal(ec, c.Options...)
}

func (c Codec) Unmarshal(data []byte, v any) error {
	dc, ok := v.(coder.Decodable)
	if !ok {
		return fmt.Errorf("grpccodec: %T does not implement coder.Decodable", v)
	}
	opts := append([]coder.Option{coder.WithStrict(true)}, c.Options...)
	return coder.Unmarshal(data, dc, opts...)
}

func (Codec) Name() string {
	return Name
}
