package model

import (
	"reflect"
	"testing"
)

func TestEncodeStringList(t *testing.T) {
	if got := EncodeStringList(nil); got != nil {
		t.Errorf("nil input should encode to nil, got %q", *got)
	}

	got := EncodeStringList([]string{"a", "b"})
	if got == nil || *got != `["a","b"]` {
		t.Errorf("unexpected encoding: %v", got)
	}

	empty := EncodeStringList([]string{})
	if empty == nil || *empty != `[]` {
		t.Errorf("empty slice should encode to [], got %v", empty)
	}
}

func TestDecodeStringList(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		raw  *string
		want []string
	}{
		{"nil column", nil, []string{}},
		{"empty column", str(""), []string{}},
		{"valid array", str(`["x","y"]`), []string{"x", "y"}},
		{"json null", str(`null`), []string{}},
		{"malformed blob", str(`{broken`), []string{}},
		{"wrong type", str(`{"a":1}`), []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeStringList(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
