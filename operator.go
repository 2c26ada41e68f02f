package qcircuit

import (
	"math/cmplx"

	"github.com/cockroachdb/errors"
)

const (
	// denseDim is the largest dimension that is always stored densely.
	denseDim = 4
	// denseRatio switches to dense storage once more than 1/denseRatio of
	// the entries are non-zero.
	denseRatio = 4
)

/*
Operator is a square complex matrix acting on the full 2^n dimensional state
space. It is stored either as sparse rows or as a dense row-major slice; the
choice is made from the matrix shape and fill after every construction step,
and callers never see it.

Embedded single gates and controlled gates carry O(N) non-zeros. Products of
many operators can fill in towards O(N²), so batching a large number of
instructions into one Compile on wide registers costs memory accordingly.
*/
type Operator struct {
	dim   int
	rows  []map[int]complex128
	dense []complex128
}

func newSparseOperator(dim int) *Operator {
	rows := make([]map[int]complex128, dim)
	for i := range rows {
		rows[i] = make(map[int]complex128)
	}
	return &Operator{dim: dim, rows: rows}
}

func newDenseOperator(dim int) *Operator {
	return &Operator{dim: dim, dense: make([]complex128, dim*dim)}
}

func identityOperator(dim int) *Operator {
	op := newSparseOperator(dim)
	for i := 0; i < dim; i++ {
		op.set(i, i, 1)
	}
	return op.settle()
}

func operatorFromMatrix2(m Matrix2) *Operator {
	op := newDenseOperator(2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			op.set(i, j, m[i][j])
		}
	}
	return op
}

// Dim returns the side length of the matrix.
func (o *Operator) Dim() int {
	return o.dim
}

// IsSparse reports whether the operator currently uses sparse storage.
func (o *Operator) IsSparse() bool {
	return o.rows != nil
}

// At returns the entry at row i, column j.
func (o *Operator) At(i, j int) complex128 {
	if o.rows != nil {
		return o.rows[i][j]
	}
	return o.dense[i*o.dim+j]
}

func (o *Operator) set(i, j int, v complex128) {
	if o.rows == nil {
		o.dense[i*o.dim+j] = v
		return
	}
	if v == 0 {
		delete(o.rows[i], j)
		return
	}
	o.rows[i][j] = v
}

func (o *Operator) add(i, j int, v complex128) {
	o.set(i, j, o.At(i, j)+v)
}

// eachInRow calls fn for every non-zero entry of row i.
func (o *Operator) eachInRow(i int, fn func(j int, v complex128)) {
	if o.rows != nil {
		for j, v := range o.rows[i] {
			fn(j, v)
		}
		return
	}
	row := o.dense[i*o.dim : (i+1)*o.dim]
	for j, v := range row {
		if v != 0 {
			fn(j, v)
		}
	}
}

func (o *Operator) each(fn func(i, j int, v complex128)) {
	for i := 0; i < o.dim; i++ {
		o.eachInRow(i, func(j int, v complex128) {
			fn(i, j, v)
		})
	}
}

// NonZeros counts the stored non-zero entries.
func (o *Operator) NonZeros() int {
	if o.rows != nil {
		n := 0
		for _, row := range o.rows {
			n += len(row)
		}
		return n
	}
	n := 0
	for _, v := range o.dense {
		if v != 0 {
			n++
		}
	}
	return n
}

// settle picks the storage for the operator's current fill.
func (o *Operator) settle() *Operator {
	wantDense := o.dim <= denseDim || o.NonZeros()*denseRatio > o.dim*o.dim

	switch {
	case wantDense && o.rows != nil:
		d := newDenseOperator(o.dim)
		o.each(d.set)
		return d
	case !wantDense && o.rows == nil:
		s := newSparseOperator(o.dim)
		o.each(s.set)
		return s
	}
	return o
}

func (o *Operator) blank() *Operator {
	if o.rows != nil {
		return newSparseOperator(o.dim)
	}
	return newDenseOperator(o.dim)
}

// kron returns the Kronecker product a ⊗ b.
func kron(a, b *Operator) *Operator {
	out := newSparseOperator(a.dim * b.dim)
	a.each(func(i, j int, x complex128) {
		b.each(func(k, l int, y complex128) {
			out.set(i*b.dim+k, j*b.dim+l, x*y)
		})
	})
	return out.settle()
}

// Add returns o + b.
func (o *Operator) Add(b *Operator) (*Operator, error) {
	if o.dim != b.dim {
		return nil, errors.Wrapf(ErrDimensionMismatch, "add %dx%d and %dx%d", o.dim, o.dim, b.dim, b.dim)
	}
	out := o.blank()
	o.each(out.set)
	b.each(out.add)
	return out.settle(), nil
}

// Mul returns the matrix product o·b.
func (o *Operator) Mul(b *Operator) (*Operator, error) {
	if o.dim != b.dim {
		return nil, errors.Wrapf(ErrDimensionMismatch, "multiply %dx%d by %dx%d", o.dim, o.dim, b.dim, b.dim)
	}

	var out *Operator
	if o.rows != nil && b.rows != nil {
		out = newSparseOperator(o.dim)
	} else {
		out = newDenseOperator(o.dim)
	}

	for i := 0; i < o.dim; i++ {
		o.eachInRow(i, func(k int, x complex128) {
			b.eachInRow(k, func(j int, y complex128) {
				out.add(i, j, x*y)
			})
		})
	}
	return out.settle(), nil
}

// Dagger returns the conjugate transpose.
func (o *Operator) Dagger() *Operator {
	out := o.blank()
	o.each(func(i, j int, v complex128) {
		out.set(j, i, cmplx.Conj(v))
	})
	return out
}

// Equal reports exact entry-wise equality, regardless of storage.
func (o *Operator) Equal(b *Operator) bool {
	return o.ApproxEqual(b, 0)
}

// ApproxEqual reports whether every entry differs by at most tol.
func (o *Operator) ApproxEqual(b *Operator, tol float64) bool {
	if o.dim != b.dim {
		return false
	}
	for i := 0; i < o.dim; i++ {
		for j := 0; j < o.dim; j++ {
			if cmplx.Abs(o.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

// IsUnitary checks U†U = I within tol.
func (o *Operator) IsUnitary(tol float64) bool {
	product, err := o.Dagger().Mul(o)
	if err != nil {
		return false
	}
	return product.ApproxEqual(identityOperator(o.dim), tol)
}

// Dense returns a copy of the matrix as rows.
func (o *Operator) Dense() [][]complex128 {
	out := make([][]complex128, o.dim)
	for i := range out {
		out[i] = make([]complex128, o.dim)
	}
	o.each(func(i, j int, v complex128) {
		out[i][j] = v
	})
	return out
}

// applyRow returns the row vector v·o.
func (o *Operator) applyRow(v []complex128) []complex128 {
	out := make([]complex128, o.dim)
	for i, amp := range v {
		if amp == 0 {
			continue
		}
		o.eachInRow(i, func(j int, x complex128) {
			out[j] += amp * x
		})
	}
	return out
}
