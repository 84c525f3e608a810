package squiggle

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/scottcoutts/scrappie/internal/matrix"
)

// Squiggle is the predicted signal for one read: a [NumFeatures, n] matrix
// with one column per sequence position.
type Squiggle struct {
	seq string
	mat *matrix.Matrix
}

// Predict runs the squiggle network over a read. When rescale is set the
// predicted current trace is standardised to zero mean and unit spread
// across the read, matching the pipeline's downstream normalisation.
//
// An unrecognised base or an internal allocation failure aborts this read
// only; callers continue with the next one.
func (m *Model) Predict(seq string, rescale bool) (*Squiggle, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("squiggle: %w: empty sequence", ErrInvalidSequence)
	}
	enc, err := EncodeSequence(seq)
	if err != nil {
		return nil, err
	}
	if !matrix.ValidateIntSlice(enc, 0, NumBases-1) {
		return nil, fmt.Errorf("squiggle: encoded sequence out of range")
	}

	xf, xb := contextViews(enc)
	hidden := matrix.AffineDual(xf, xb, m.wf, m.wb, m.b, nil)
	tanhInPlace(hidden)
	out := matrix.Affine(hidden, m.wo, m.bo, nil)
	if out == nil {
		return nil, errors.New("squiggle: prediction failed")
	}
	if rescale {
		rescaleCurrent(out)
	}

	unspec := matrix.Unspecified()
	if !matrix.Validate(out, unspec, unspec, unspec, true) {
		return nil, errors.New("squiggle: non-finite prediction")
	}
	return &Squiggle{seq: seq, mat: out}, nil
}

// contextViews builds the two one-hot input matrices of the bidirectional
// layer: the forward view encodes each position's own base, the backward
// view the following base (zero column at the last position).
func contextViews(enc []int32) (xf, xb *matrix.Matrix) {
	n := len(enc)
	xf = matrix.New(NumBases, n)
	xb = matrix.New(NumBases, n)
	if xf == nil || xb == nil {
		return nil, nil
	}
	for j, base := range enc {
		xf.Data[j*xf.Stride+int(base)] = 1
		if j > 0 {
			xb.Data[(j-1)*xb.Stride+int(base)] = 1
		}
	}
	return xf, xb
}

// tanhInPlace squashes the whole padded buffer; tanh(0) = 0 keeps zero
// padding zero. Nil input propagates silently.
func tanhInPlace(m *matrix.Matrix) {
	if m == nil {
		return
	}
	for i, v := range m.Data {
		m.Data[i] = float32(math.Tanh(float64(v)))
	}
}

// rescaleCurrent standardises the current row (row 0) to zero mean and unit
// standard deviation across all positions. Degenerate reads with zero spread
// are left on their original scale.
func rescaleCurrent(m *matrix.Matrix) {
	n := float64(m.Cols)
	var sum, sumSq float64
	for c := 0; c < m.Cols; c++ {
		v := float64(m.Data[c*m.Stride])
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	sd := math.Sqrt(sumSq/n - mean*mean)
	if sd == 0 || math.IsNaN(sd) {
		return
	}
	for c := 0; c < m.Cols; c++ {
		idx := c * m.Stride
		m.Data[idx] = float32((float64(m.Data[idx]) - mean) / sd)
	}
}

// Len returns the number of positions.
func (s *Squiggle) Len() int { return s.mat.Cols }

// Base returns the base at position i.
func (s *Squiggle) Base(i int) byte { return s.seq[i] }

// At returns the predicted current, spread and dwell at position i.
func (s *Squiggle) At(i int) (current, sd, dwell float32) {
	off := i * s.mat.Stride
	return s.mat.Data[off], s.mat.Data[off+1], s.mat.Data[off+2]
}

// Matrix exposes the underlying [NumFeatures, n] container.
func (s *Squiggle) Matrix() *matrix.Matrix { return s.mat }

// WriteTSV emits the squiggle table: a '#name' header followed by one
// 'pos base current sd dwell' line per position.
func (s *Squiggle) WriteTSV(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "#%s\n", name); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		current, sd, dwell := s.At(i)
		if _, err := fmt.Fprintf(w, "%d\t%c\t%3.6f\t%3.6f\t%3.6f\n",
			i, s.seq[i], current, sd, dwell); err != nil {
			return err
		}
	}
	return nil
}
