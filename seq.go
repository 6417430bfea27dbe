// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package funk

// The ordered-sequence family operates on plain slices. The container is
// the builtin slice type; only the operations are provided here.

// MapSeq applies f to each element in order, yielding a slice of the same
// length.
func MapSeq[A, B any](xs []A, f func(A) B) []B {
	ys := make([]B, 0, len(xs))
	for _, x := range xs {
		ys = append(ys, f(x))
	}
	return ys
}

// PureSeq lifts a into a single-element sequence.
func PureSeq[A any](a A) []A {
	return []A{a}
}

// ApplySeq applies every function in fs to every value in xs: the Cartesian
// product, with functions as the outer loop and values as the inner loop,
// both in source order. The result has len(xs)*len(fs) elements; an empty
// operand on either side yields an empty result.
func ApplySeq[A, B any](xs []A, fs []func(A) B) []B {
	ys := make([]B, 0, len(xs)*len(fs))
	for _, f := range fs {
		for _, x := range xs {
			ys = append(ys, f(x))
		}
	}
	return ys
}

// BindSeq concatenates, in order, the sequences produced by f for each
// element of xs. A step producing an empty sequence contributes nothing.
func BindSeq[A, B any](xs []A, f func(A) []B) []B {
	var ys []B
	for _, x := range xs {
		ys = append(ys, f(x)...)
	}
	return ys
}

// SeqKind is the kind witness of the ordered-sequence family. The zero
// value is ready to use.
type SeqKind[A, B any] struct{}

// Fmap implements Functor for the ordered-sequence family.
func (SeqKind[A, B]) Fmap(fa []A, f func(A) B) []B {
	return MapSeq(fa, f)
}

// Pure implements Applicative for the ordered-sequence family: the
// canonical single-value container is a one-element sequence.
func (SeqKind[A, B]) Pure(a A) []A {
	return PureSeq(a)
}

// Apply implements Applicative for the ordered-sequence family.
func (SeqKind[A, B]) Apply(fa []A, ff []func(A) B) []B {
	return ApplySeq(fa, ff)
}

// Bind implements Monad for the ordered-sequence family.
func (SeqKind[A, B]) Bind(fa []A, f func(A) []B) []B {
	return BindSeq(fa, f)
}

// Witness-to-family consistency, checked at compile time.
var _ Monad[[]int, []string, []func(int) string, int, string] = SeqKind[int, string]{}
