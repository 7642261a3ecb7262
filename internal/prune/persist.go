package prune

import (
	"encoding/binary"
	"fmt"
	"io"
)

// magic identifies a persisted pruning table file; it is followed by a
// 4-byte family id and a 4-byte entry count, then the raw packed depths.
const magic = "PRUNETBL"

// FamilyID distinguishes coordinate families within a persisted table's
// header so a loader can sanity-check it against the family it expected.
type FamilyID uint32

const (
	FamilyEOFB FamilyID = iota
	FamilyCornerOrientation
	FamilyESlice
	FamilyDRUD
	FamilyHTR
	FamilyFRUD
	FamilyFRFinish
	FamilyHTRFinish
)

// Save writes t to w with the family header, raw packed depths following.
func Save(w io.Writer, family FamilyID, t *Table) error {
	header := make([]byte, 16)
	copy(header, magic)
	binary.LittleEndian.PutUint32(header[8:12], uint32(family))
	binary.LittleEndian.PutUint32(header[12:16], uint32(t.n))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("prune: write header: %w", err)
	}
	if _, err := w.Write(t.depths); err != nil {
		return fmt.Errorf("prune: write depths: %w", err)
	}
	return nil
}

// Load reads a pruning table previously written by Save, verifying that
// its family id matches want.
func Load(r io.Reader, want FamilyID) (*Table, error) {
	header := make([]byte, 16)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("prune: read header: %w", err)
	}
	if string(header[:8]) != magic {
		return nil, fmt.Errorf("prune: bad magic %q", header[:8])
	}
	family := FamilyID(binary.LittleEndian.Uint32(header[8:12]))
	if family != want {
		return nil, fmt.Errorf("prune: family id %d does not match expected %d", family, want)
	}
	n := int(binary.LittleEndian.Uint32(header[12:16]))

	t := &Table{n: n, depths: make([]uint8, (n+1)/2)}
	if _, err := io.ReadFull(r, t.depths); err != nil {
		return nil, fmt.Errorf("prune: read depths: %w", err)
	}
	return t, nil
}
