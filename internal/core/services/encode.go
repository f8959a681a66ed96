package services

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serialises v as compact single-line JSON, or as pretty JSON with
// object keys sorted at every level and two-space indentation.
func Encode(v any, pretty bool) ([]byte, error) {
	compact, err := marshal(v, "")
	if err != nil {
		return nil, err
	}
	if !pretty {
		return compact, nil
	}

	// Struct fields marshal in declaration order; decoding into generic
	// maps and re-encoding yields sorted keys. UseNumber keeps numbers exact.
	dec := json.NewDecoder(bytes.NewReader(compact))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decoding for key sort: %w", err)
	}

	return marshal(generic, "  ")
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
