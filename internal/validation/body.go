package validation

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
)

const (
	msgMissingBody = "Missing request body"
	msgInvalidJSON = "Invalid JSON in request body"
)

// body is a request body decoded one level deep, so field presence and JSON null
// can be told apart before any field is interpreted.
type body map[string]json.RawMessage

// decodeBody reads the event body as a JSON object.
func decodeBody(ev Event) (body, *Error) {
	raw := ev.Body
	if ev.IsBase64Encoded && raw != "" {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fail(msgInvalidJSON)
		}
		raw = string(decoded)
	}
	if raw == "" {
		return nil, fail(msgMissingBody)
	}

	var b body
	if err := json.Unmarshal([]byte(raw), &b); err != nil || b == nil {
		return nil, fail(msgInvalidJSON)
	}
	return b, nil
}

func (b body) has(name string) bool {
	_, ok := b[name]
	return ok
}

// present reports whether name is in the body with a non-null value.
func (b body) present(name string) bool {
	raw, ok := b[name]
	return ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// str returns the field as a string; ok is false when it is not a JSON string.
func (b body) str(name string) (string, bool) {
	var s string
	if err := json.Unmarshal(b[name], &s); err != nil {
		return "", false
	}
	return s, true
}

// value decodes the field keeping numbers as json.Number.
func (b body) value(name string) any {
	dec := json.NewDecoder(bytes.NewReader(b[name]))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
