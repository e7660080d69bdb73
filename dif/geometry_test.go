package dif

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"sutext.github.io/difio/coder"
)

func TestGeometryRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   coder.Codable
		out  coder.Codable
		size int
	}{
		{"Point2F", &Point2F{X: 1, Y: 2}, &Point2F{}, 8},
		{"Point3F", &Point3F{X: 1, Y: 2, Z: 3}, &Point3F{}, 12},
		{"QuatF", &QuatF{W: 1, X: 0, Y: 0.5, Z: -0.5}, &QuatF{}, 16},
		{"ColorI", &ColorI{Red: 255, Green: 128, Blue: 0, Alpha: 1}, &ColorI{}, 4},
		{"ColorF", &ColorF{Red: 0.25, Alpha: 1}, &ColorF{}, 16},
		{"Point3I", &Point3[int32]{X: -1, Y: 0, Z: 1}, &Point3[int32]{}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := coder.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if len(data) != tt.size {
				t.Errorf("encoded %d bytes, want %d", len(data), tt.size)
			}
			if err := coder.Unmarshal(data, tt.out); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if diff := cmp.Diff(tt.in, tt.out); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorLayout(t *testing.T) {
	data, err := coder.Marshal(&ColorI{Red: 1, Green: 2, Blue: 3, Alpha: 4})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{1, 2, 3, 4}) {
		t.Errorf("got % x", data)
	}
}

func TestDictionary(t *testing.T) {
	var m Dictionary
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")
	if v, ok := m.Get("a"); !ok || v != "3" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) reported a value")
	}
	data, err := coder.Marshal(&m)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{2, 0, 0, 0, 1, 'a', 1, '3', 1, 'b', 1, '2'}
	if !bytes.Equal(data, want) {
		t.Errorf("got % x, want % x", data, want)
	}
	var got Dictionary
	if err := coder.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
