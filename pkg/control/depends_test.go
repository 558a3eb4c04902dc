package control

import (
	"reflect"
	"testing"
)

func TestParseDepends(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"single", "libc6", []string{"libc6"}},
		{"conjunction", "libc6, zlib1g", []string{"libc6", "zlib1g"}},
		{"version stripped", "libc6 (>= 2.14)", []string{"libc6"}},
		{"versions in conjunction", "B, C (>= 1.0)", []string{"B", "C"}},
		{"alternatives kept", "X | Y, Z", []string{"X", "Y", "Z"}},
		{"alternatives with versions", "libssl3 (>= 3.0) | libssl1.1, zlib1g", []string{"libssl3", "libssl1.1", "zlib1g"}},
		{"duplicates dropped", "A, A, B", []string{"A", "B"}},
		{"duplicate across alternatives", "A | B, B", []string{"A", "B"}},
		{"collapsed whitespace", "  liba ,   libb\t(=1) ", []string{"liba", "libb"}},
		{"empty terms skipped", "liba, , libb,", []string{"liba", "libb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDepends(tt.field); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDepends(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestParseDepends_FirstOccurrenceFixesPosition(t *testing.T) {
	got := ParseDepends("B, A, B | C")
	want := []string{"B", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
