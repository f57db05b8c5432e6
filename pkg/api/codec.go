// Package api defines the request and response messages of the bill tracker
// RPC services. Messages are plain Go structs carried as JSON by JSONCodec.
package api

import (
	"encoding/json"
	"fmt"
)

// JSONCodec is a connect.Codec that marshals messages with encoding/json.
// It replaces connect's protobuf JSON codec under the same name, so the wire
// content type stays application/json.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string {
	return "json"
}

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero
// message.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
