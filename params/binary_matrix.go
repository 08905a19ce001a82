package params

import "github.com/katalvlaran/episaft/saft"

// BinaryMatrix is a dense n×n arrangement of binary interaction records.
// The zero record (no coefficients, no overrides) is a valid cell; a nil
// *BinaryMatrix means "no binary information at all".
type BinaryMatrix struct {
	n    int
	recs []saft.BinaryRecord // row-major, length n·n
}

// NewBinaryMatrix returns an n×n matrix of zero records.
// Panics if n <= 0 (programmer error, mirroring invalid-shape construction).
func NewBinaryMatrix(n int) *BinaryMatrix {
	if n <= 0 {
		panic("params: BinaryMatrix dimension must be > 0")
	}
	return &BinaryMatrix{n: n, recs: make([]saft.BinaryRecord, n*n)}
}

// Len returns the per-side dimension n.
func (b *BinaryMatrix) Len() int { return b.n }

// At returns the record of pair (i, j).
func (b *BinaryMatrix) At(i, j int) saft.BinaryRecord {
	return b.recs[i*b.n+j]
}

// Set stores rec at (i, j) only.
func (b *BinaryMatrix) Set(i, j int, rec saft.BinaryRecord) {
	b.recs[i*b.n+j] = rec
}

// SetSym stores rec at (i, j) and (j, i).
func (b *BinaryMatrix) SetSym(i, j int, rec saft.BinaryRecord) {
	b.Set(i, j, rec)
	b.Set(j, i, rec)
}
