// Package grpccodec registers a gRPC codec that carries contract records as
// JSON, so management calls can exchange gateway documents without protobuf
// codegen. Select it on a call with grpc.CallContentSubtype(grpccodec.Name).
package grpccodec

import (
    "encoding/json"

    "google.golang.org/grpc/encoding"

    "github.com/amirimatin/go-fabric/pkg/contract"
)

const Name = "fabric-json"

// codec routes contract records through contract.Marshal/Unmarshal and
// falls back to encoding/json for any other message.
type codec struct{}

func (codec) Marshal(v interface{}) ([]byte, error) {
    if r, ok := v.(contract.Record); ok { return contract.Marshal(r) }
    return json.Marshal(v)
}

func (codec) Unmarshal(b []byte, v interface{}) error {
    if r, ok := v.(contract.Record); ok { return contract.Unmarshal(b, r) }
    return json.Unmarshal(b, v)
}

func (codec) Name() string { return Name }

func init() {
    encoding.RegisterCodec(codec{})
}
