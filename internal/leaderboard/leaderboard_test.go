package leaderboard

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/catchverse/internal/storage"
)

func TestInsertOrdersByScore(t *testing.T) {
	var entries []Entry
	for _, e := range []Entry{
		{"ada", 5},
		{"bob", 12},
		{"cy", 5},
		{"dee", 0},
		{"eve", 12},
	} {
		entries = Insert(entries, e)
	}

	expected := []Entry{
		{"bob", 12},
		{"eve", 12},
		{"ada", 5},
		{"cy", 5},
		{"dee", 0},
	}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("Insert() order = %v, expected %v", entries, expected)
	}
}

func TestEncodeDecode(t *testing.T) {
	entries := []Entry{{"bob", 12}, {"ada", 5}}

	data, err := Encode(entries)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if string(data) != `[{"name":"bob","score":12},{"name":"ada","score":5}]` {
		t.Errorf("Encode() = %s", data)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("Decode() = %v, expected %v", got, entries)
	}
}

func TestEncodeEmpty(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Encode(nil) = %s, expected []", data)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected []Entry
		wantErr  bool
	}{
		{"empty input", "", nil, false},
		{"empty array", "[]", []Entry{}, false},
		{"unsorted input is sorted", `[{"name":"a","score":1},{"name":"b","score":9}]`, []Entry{{"b", 9}, {"a", 1}}, false},
		{"unknown fields ignored", `[{"name":"a","score":1,"when":"now"}]`, []Entry{{"a", 1}}, false},
		{"not json", "nope", nil, true},
		{"wrong shape", `{"name":"a"}`, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.data))
			if (err != nil) != tc.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Decode() = %#v, expected %#v", got, tc.expected)
			}
		})
	}
}

func TestMemoryBackend(t *testing.T) {
	m := NewMemoryBackend()

	if _, err := m.Get(Key); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get() on empty backend error = %v", err)
	}

	value := []byte("abc")
	if err := m.Put(Key, value); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	value[0] = 'x'

	got, err := m.Get(Key)
	if err != nil || string(got) != "abc" {
		t.Errorf("Get() = %q, %v; stored value should be a copy", got, err)
	}
}
