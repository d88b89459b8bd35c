package config

import (
	"reflect"
	"testing"
)

type scratchDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore[scratchDoc](dir, "scratch.yaml", false)

	want := scratchDoc{Name: "repomix", Count: 3}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-tripped document = %+v, want %+v", got, want)
	}
}

func TestStoreLoadMissingAllowed(t *testing.T) {
	dir := t.TempDir()
	store := NewStore[scratchDoc](dir, "missing.yaml", true)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if !reflect.DeepEqual(got, scratchDoc{}) {
		t.Errorf("got %+v, want zero value on missing file", got)
	}
}

func TestStoreLoadMissingDisallowed(t *testing.T) {
	dir := t.TempDir()
	store := NewStore[scratchDoc](dir, "missing.yaml", false)

	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error loading missing file without allowMissing")
	}
}
