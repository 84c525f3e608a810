package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Affine computes C = Wᵗ·X + b with the bias broadcast into every column.
//
// X is [nr, nc] (nc input vectors of dimension nr), W is [nr, nk] and b is a
// one-column matrix of nk rows; the result is [nk, nc]. When c has matching
// shape it is reused and overwritten, otherwise a fresh container is
// allocated. The bias broadcast copies b's full padded column, so whatever b
// holds in its padding lanes propagates into the result's padding.
//
// A nil X propagates to a nil result. W and b are caller-supplied model
// state and must not be nil; that is a programmer error and panics.
func Affine(x, w, b, c *Matrix) *Matrix {
	if x == nil {
		// Nil from an earlier failure. Propagate.
		return nil
	}
	if w == nil || b == nil {
		panic("matrix: affine weights must not be nil")
	}
	if w.Rows != x.Rows {
		panic("matrix: affine shape mismatch")
	}

	c = Remake(c, w.Cols, x.Cols)
	if c == nil {
		return nil
	}
	broadcastBias(c, b)
	gemmAccum(c, w, x)
	return c
}

// AffineDual merges two affine transforms sharing one output and one bias:
// C = Wfᵗ·Xf + Wbᵗ·Xb + b. The bias is broadcast once, then both products
// accumulate onto it in sequence. This realises the combined contribution of
// a bidirectional layer in one call.
func AffineDual(xf, xb, wf, wb, b, c *Matrix) *Matrix {
	if xf == nil || xb == nil {
		return nil
	}
	if wf == nil || wb == nil || b == nil {
		panic("matrix: affine weights must not be nil")
	}
	if wf.Rows != xf.Rows || wb.Rows != xb.Rows {
		panic("matrix: affine shape mismatch")
	}
	if xf.Cols != xb.Cols || wf.Cols != wb.Cols {
		panic("matrix: affine shape mismatch")
	}

	c = Remake(c, wf.Cols, xf.Cols)
	if c == nil {
		return nil
	}
	broadcastBias(c, b)
	gemmAccum(c, wf, xf)
	gemmAccum(c, wb, xb)
	return c
}

// broadcastBias copies the full padded bias column, padding lanes included,
// into every column of c.
func broadcastBias(c, b *Matrix) {
	for col := 0; col < c.Cols; col++ {
		copy(c.Data[col*c.Stride:(col+1)*c.Stride], b.Data[:c.Stride])
	}
}

// gemmAccum performs c += wᵗ·x in one accumulating BLAS call.
//
// blas32 is row-major, the containers are column-major, so each padded
// buffer is presented as its row-major transpose with the leading dimension
// set to the physical row count: cᵗ += xᵗ·w. Padding rows fall outside the
// logical Cols of each view and are neither read nor written.
func gemmAccum(c, w, x *Matrix) {
	xt := blas32.General{Rows: x.Cols, Cols: x.Rows, Stride: x.Stride, Data: x.Data}
	wt := blas32.General{Rows: w.Cols, Cols: w.Rows, Stride: w.Stride, Data: w.Data}
	ct := blas32.General{Rows: c.Cols, Cols: c.Rows, Stride: c.Stride, Data: c.Data}
	blas32.Gemm(blas.NoTrans, blas.Trans, 1, xt, wt, 1, ct)
}
