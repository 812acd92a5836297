package model

import (
	"testing"
	"time"
)

func TestActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		section DisplaySection
		want    bool
	}{
		{"active with no window", DisplaySection{Active: true}, true},
		{"inactive flag wins", DisplaySection{Active: false}, false},
		{"inside window", DisplaySection{Active: true, StartDate: &before, EndDate: &after}, true},
		{"window not started", DisplaySection{Active: true, StartDate: &after}, false},
		{"window expired", DisplaySection{Active: true, EndDate: &before}, false},
		{"open-ended start", DisplaySection{Active: true, StartDate: &before}, true},
		{"open-ended end", DisplaySection{Active: true, EndDate: &after}, true},
		{"inactive inside window", DisplaySection{Active: false, StartDate: &before, EndDate: &after}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.section.ActiveAt(now); got != tc.want {
				t.Errorf("ActiveAt = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidSectionType(t *testing.T) {
	for _, typ := range SectionTypes {
		if !ValidSectionType(typ) {
			t.Errorf("%q should be valid", typ)
		}
	}
	for _, typ := range []string{"", "bogus", "Category", "CUSTOM"} {
		if ValidSectionType(typ) {
			t.Errorf("%q should be invalid", typ)
		}
	}
}
