package uec_test

import (
	"testing"

	uec "github.com/uecformat/uec"
)

func TestDiff_Reflexivity(t *testing.T) {
	card := conversionFixture()
	if entries := uec.Diff(card, card); len(entries) != 0 {
		t.Fatalf("diff of a document with itself must be empty, got %v", entries)
	}
}

func TestDiff_Symmetry(t *testing.T) {
	a := map[string]any{
		"schema":  map[string]any{"name": "UEC", "version": "1.0"},
		"payload": map[string]any{"title": "A", "only_left": true},
	}
	b := map[string]any{
		"schema":  map[string]any{"name": "UEC", "version": "1.0"},
		"payload": map[string]any{"title": "B", "only_right": true},
	}

	forward := uec.Diff(a, b)
	backward := uec.Diff(b, a)
	if len(forward) != len(backward) {
		t.Fatalf("diff is not symmetric: %d vs %d entries", len(forward), len(backward))
	}

	byPath := map[string]uec.DiffEntry{}
	for _, entry := range backward {
		byPath[entry.Path] = entry
	}
	for _, entry := range forward {
		mirror, ok := byPath[entry.Path]
		if !ok {
			t.Fatalf("path %s missing from reverse diff", entry.Path)
		}
		switch entry.Type {
		case uec.ChangeAdded:
			if mirror.Type != uec.ChangeRemoved {
				t.Fatalf("added %s must mirror as removed, got %s", entry.Path, mirror.Type)
			}
		case uec.ChangeRemoved:
			if mirror.Type != uec.ChangeAdded {
				t.Fatalf("removed %s must mirror as added, got %s", entry.Path, mirror.Type)
			}
		case uec.ChangeChanged:
			if mirror.Type != uec.ChangeChanged {
				t.Fatalf("changed %s must mirror as changed, got %s", entry.Path, mirror.Type)
			}
			if mirror.Before != entry.After || mirror.After != entry.Before {
				t.Fatalf("changed %s must mirror with before/after swapped: %+v vs %+v", entry.Path, entry, mirror)
			}
		}
	}
}

func TestDiff_ChangedCarriesBothValues(t *testing.T) {
	a := map[string]any{"payload": map[string]any{"title": "A"}}
	b := map[string]any{"payload": map[string]any{"title": "B"}}

	entries := uec.Diff(a, b)
	var found bool
	for _, entry := range entries {
		if entry.Path == "payload.title" {
			found = true
			if entry.Type != uec.ChangeChanged || entry.Before != "A" || entry.After != "B" {
				t.Fatalf("unexpected entry: %+v", entry)
			}
		}
	}
	if !found {
		t.Fatalf("expected a payload.title entry, got %v", entries)
	}
}

func TestDiff_ArraysCompareIndexWise(t *testing.T) {
	a := map[string]any{"payload": map[string]any{"tags": []any{"x", "y"}}}
	b := map[string]any{"payload": map[string]any{"tags": []any{"x"}}}

	entries := uec.Diff(a, b)
	var found bool
	for _, entry := range entries {
		if entry.Path == "payload.tags[1]" {
			found = true
			// Missing trailing elements are compared as null.
			if entry.Type != uec.ChangeChanged || entry.Before != "y" || entry.After != nil {
				t.Fatalf("unexpected entry: %+v", entry)
			}
		}
	}
	if !found {
		t.Fatalf("expected a payload.tags[1] entry, got %v", entries)
	}
}

func TestDiff_TypeMismatchIsChanged(t *testing.T) {
	a := map[string]any{"payload": map[string]any{"tags": []any{"x"}}}
	b := map[string]any{"payload": map[string]any{"tags": "x"}}

	entries := uec.Diff(a, b)
	if len(entries) != 1 || entries[0].Path != "payload.tags" || entries[0].Type != uec.ChangeChanged {
		t.Fatalf("type mismatch must be one changed entry, got %v", entries)
	}
}

func TestDiff_RootScalar(t *testing.T) {
	entries := uec.Diff("a", "b")
	if len(entries) != 1 || entries[0].Path != "root" {
		t.Fatalf("root scalar difference must report path root, got %v", entries)
	}
}

func TestDiff_NormalizationHidesContainerDefaults(t *testing.T) {
	a := minimalV1Character()
	b := minimalV1Character()
	b["meta"] = map[string]any{}
	b["extensions"] = map[string]any{}

	if entries := uec.Diff(a, b); len(entries) != 0 {
		t.Fatalf("container defaults must not diff, got %v", entries)
	}
}
