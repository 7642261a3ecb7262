package prune

import (
	"bytes"
	"testing"

	"github.com/ehrlich-b/cube/internal/coord"
	"github.com/ehrlich-b/cube/internal/moveset"
)

func TestBuildGoalIsZero(t *testing.T) {
	tbl := Build(coord.EOFB{}, moveset.ForKind(moveset.EO))
	if got := tbl.Get(0); got != 0 {
		t.Errorf("Get(0) = %d, want 0", got)
	}
}

// TestBuildAdmissible checks that every entry the flood leaves behind is a
// representable depth in [0, MaxDepth]; it does not compare entries with
// independently computed distances.
func TestBuildAdmissible(t *testing.T) {
	tbl := Build(coord.CornerOrientation{}, moveset.ForKind(moveset.EO))
	for c := 0; c < tbl.Len(); c++ {
		d := tbl.Get(c)
		if d < 0 || d > MaxDepth {
			t.Fatalf("Get(%d) = %d out of range", c, d)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tbl := Build(coord.CornerOrientation{}, moveset.ForKind(moveset.EO))

	var buf bytes.Buffer
	if err := Save(&buf, FamilyCornerOrientation, tbl); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(&buf, FamilyCornerOrientation)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != tbl.Len() {
		t.Fatalf("loaded.Len() = %d, want %d", loaded.Len(), tbl.Len())
	}
	for c := 0; c < tbl.Len(); c++ {
		if loaded.Get(c) != tbl.Get(c) {
			t.Fatalf("loaded.Get(%d) = %d, want %d", c, loaded.Get(c), tbl.Get(c))
		}
	}
}

func TestLoadRejectsWrongFamily(t *testing.T) {
	tbl := Build(coord.CornerOrientation{}, moveset.ForKind(moveset.EO))
	var buf bytes.Buffer
	if err := Save(&buf, FamilyCornerOrientation, tbl); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := Load(&buf, FamilyEOFB); err == nil {
		t.Fatal("Load with mismatched family id: want error, got nil")
	}
}

func TestRegistryBuildsOnce(t *testing.T) {
	r := NewRegistry()
	first := r.GetOrBuild(FamilyEOFB, coord.EOFB{}, moveset.ForKind(moveset.EO))
	second := r.GetOrBuild(FamilyEOFB, coord.EOFB{}, moveset.ForKind(moveset.EO))
	if first != second {
		t.Error("GetOrBuild returned a different table on the second call")
	}
}
