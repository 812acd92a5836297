package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a request field that clients send in several shapes. The
// accepted forms are tried in a fixed order:
//
//  1. a JSON array (elements stringified),
//  2. a JSON string containing an encoded array,
//  3. a bare scalar, wrapped as a single-element list.
//
// Anything else (objects, nested arrays) is a decode error.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}

	// 1. JSON array
	if data[0] == '[' {
		return l.fromArray(data)
	}

	// 2. JSON string, possibly holding an encoded array
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		trimmed := strings.TrimSpace(s)
		if strings.HasPrefix(trimmed, "[") {
			if err := l.fromArray([]byte(trimmed)); err == nil {
				return nil
			}
			// fall through: treat the malformed encoding as a bare value
		}
		*l = StringList{s}
		return nil
	}

	// 3. bare scalar (number, bool)
	if data[0] == '{' {
		return fmt.Errorf("cannot decode object into string list")
	}
	*l = StringList{string(data)}
	return nil
}

func (l *StringList) fromArray(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(StringList, 0, len(raw))
	for _, elem := range raw {
		elem = bytes.TrimSpace(elem)
		var s string
		if err := json.Unmarshal(elem, &s); err == nil {
			out = append(out, s)
			continue
		}
		if len(elem) > 0 && (elem[0] == '{' || elem[0] == '[') {
			return fmt.Errorf("string list elements must be scalar")
		}
		out = append(out, string(elem))
	}
	*l = out
	return nil
}
