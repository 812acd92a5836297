package model

import "encoding/json"

// EncodeStringList serializes a list for storage in a TEXT column.
// Nil input encodes to nil so the column stays NULL.
func EncodeStringList(values []string) *string {
	if values == nil {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}

// DecodeStringList deserializes a TEXT column holding a JSON array.
// Malformed or NULL payloads decode to an empty list, never an error:
// a bad blob in one row must not fail a whole read.
func DecodeStringList(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(*raw), &values); err != nil {
		return []string{}
	}
	if values == nil {
		return []string{}
	}
	return values
}
