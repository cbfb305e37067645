package client

import (
	"encoding/json"
	"fmt"
)

// listEnvelope tolerates the response shapes the list endpoints have shipped
// over time: {data: [...]}, {data: {data: [...]}}, {items: [...]}, or a bare
// array. unwrapList returns the raw item array regardless of which one arrived.
type listEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Items json.RawMessage `json:"items"`
}

func unwrapList(body []byte) (json.RawMessage, error) {
	body = trimSpace(body)
	if len(body) == 0 {
		return json.RawMessage("[]"), nil
	}

	if body[0] == '[' {
		return body, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode list envelope: %w", err)
	}

	raw := env.Data
	if len(raw) == 0 {
		raw = env.Items
	}
	if len(raw) == 0 {
		return json.RawMessage("[]"), nil
	}

	raw = trimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		// One more level: {data: {data: [...]}}
		var inner listEnvelope
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("decode nested list envelope: %w", err)
		}
		if len(inner.Data) > 0 {
			return trimSpace(inner.Data), nil
		}
		if len(inner.Items) > 0 {
			return trimSpace(inner.Items), nil
		}
		return json.RawMessage("[]"), nil
	}

	return raw, nil
}

// unwrapData returns the payload of a single-resource response, tolerating
// both {data: {...}} and a bare object
func unwrapData(body []byte) json.RawMessage {
	body = trimSpace(body)
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(trimSpace(env.Data)) > 0 {
		return trimSpace(env.Data)
	}
	return body
}

func trimSpace(b []byte) []byte {
	start := 0
	for start < len(b) && isSpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// decodeList unwraps any list envelope shape and decodes the items into dst
func decodeList(body []byte, dst interface{}) error {
	raw, err := unwrapList(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// decodeSingle unwraps a single-resource envelope and decodes it into dst
func decodeSingle(body []byte, dst interface{}) error {
	return json.Unmarshal(unwrapData(body), dst)
}
