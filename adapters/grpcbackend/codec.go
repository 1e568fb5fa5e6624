package grpcbackend

import "encoding/json"

// jsonCodec is a grpc encoding.Codec that carries call bodies as JSON. The
// backend method contracts are defined by method name and field names, not by
// a compiled schema, so the gateway stays free of generated message types.
// Human-readable and cross-language at the cost of payload size.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
