// Package squiggle predicts the expected nanopore signal (current, spread,
// dwell) for a DNA sequence using a small bidirectional affine network over
// the matrix kernels.
package squiggle

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence marks reads that cannot be encoded: empty input or an
// unrecognised base. Callers treat these as bad input rather than internal
// failures.
var ErrInvalidSequence = errors.New("invalid sequence")

// NumBases is the alphabet size of the one-hot input encoding.
const NumBases = 4

// NumFeatures is the number of signal features predicted per position:
// current mean, current spread, dwell time.
const NumFeatures = 3

// BaseToInt maps a nucleotide to its canonical index (A=0, C=1, G=2, T=3),
// returning -1 for anything else.
func BaseToInt(b byte, allowLower bool) int {
	if allowLower && b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

// EncodeSequence converts a read into base indices. An unrecognised base
// aborts the whole read; callers skip that read and move on.
func EncodeSequence(seq string) ([]int32, error) {
	enc := make([]int32, len(seq))
	for i := 0; i < len(seq); i++ {
		ib := BaseToInt(seq[i], true)
		if ib < 0 {
			return nil, fmt.Errorf("squiggle: %w: unrecognised base %q at position %d", ErrInvalidSequence, seq[i], i)
		}
		enc[i] = int32(ib)
	}
	return enc, nil
}
