// Package api defines the ReportKeeper gRPC contract: request and response
// messages, the service descriptor and a typed client. Messages use the
// protobuf binary encoding described in reportkeeper.proto.
package api

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype both sides must use.
const CodecName = "rkproto"

// wireMessage is implemented by every request and response in this package.
type wireMessage interface {
	appendWire(b []byte) []byte
	readWire(b []byte) error
}

type protoCodec struct{}

func (protoCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(wireMessage)
	if !ok {
		return nil, fmt.Errorf("api: cannot marshal %T", v)
	}
	return m.appendWire(nil), nil
}

func (protoCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(wireMessage)
	if !ok {
		return fmt.Errorf("api: cannot unmarshal into %T", v)
	}
	return m.readWire(data)
}

func (protoCodec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(protoCodec{})
}
