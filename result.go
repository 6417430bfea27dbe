// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package funk

// Result represents a value that is either Ok (success) or Err (failure).
// Exactly one slot is populated at a time; it is a tagged union, not a pair.
type Result[A, E any] struct {
	ok  bool
	val A
	err E
}

// Ok creates a success Result.
func Ok[A, E any](a A) Result[A, E] {
	return Result[A, E]{ok: true, val: a}
}

// Err creates a failure Result.
func Err[A, E any](e E) Result[A, E] {
	return Result[A, E]{err: e}
}

// IsOk returns true if this is a success value.
func (r Result[A, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if this is a failure value.
func (r Result[A, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and true, or zero and false.
func (r Result[A, E]) Get() (A, bool) {
	if r.ok {
		return r.val, true
	}
	var zero A
	return zero, false
}

// GetErr returns the failure value and true, or zero and false.
func (r Result[A, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[A, E, T any](r Result[A, E], onOk func(A) T, onErr func(E) T) T {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}

// MapResult applies f to the success value. Errors pass through unchanged.
func MapResult[A, B, E any](r Result[A, E], f func(A) B) Result[B, E] {
	if r.ok {
		return Ok[B, E](f(r.val))
	}
	return Err[B](r.err)
}

// MapErrResult applies f to the failure value. Successes pass through
// unchanged.
func MapErrResult[A, E, F any](r Result[A, E], f func(E) F) Result[A, F] {
	if r.ok {
		return Ok[A, F](r.val)
	}
	return Err[A](f(r.err))
}

// ApplyResult applies a function held in rf to the value held in r. If
// either side is a failure that error propagates; the value side is checked
// first.
func ApplyResult[A, B, E any](r Result[A, E], rf Result[func(A) B, E]) Result[B, E] {
	if !r.ok {
		return Err[B](r.err)
	}
	if !rf.ok {
		return Err[B](rf.err)
	}
	return Ok[B, E](rf.val(r.val))
}

// BindResult sequences a Result-producing step. Errors propagate without
// calling f.
func BindResult[A, B, E any](r Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	if r.ok {
		return f(r.val)
	}
	return Err[B](r.err)
}

// BimapResult applies f to the success slot or g to the error slot,
// whichever is populated.
func BimapResult[A, B, C, D any](r Result[A, B], f func(A) C, g func(B) D) Result[C, D] {
	if r.ok {
		return Ok[C, D](f(r.val))
	}
	return Err[C](g(r.err))
}

// FirstResult maps only the success slot; the error slot's type changes
// unobserved.
func FirstResult[A, B, C any](r Result[A, B], f func(A) C) Result[C, B] {
	if r.ok {
		return Ok[C, B](f(r.val))
	}
	return Err[C](r.err)
}

// SecondResult maps only the error slot; the success slot's type changes
// unobserved.
func SecondResult[A, B, D any](r Result[A, B], g func(B) D) Result[A, D] {
	if r.ok {
		return Ok[A, D](r.val)
	}
	return Err[A](g(r.err))
}

// ResultKind is the kind witness of the fallible-result family with error
// type E fixed per instantiation. The zero value is ready to use.
type ResultKind[A, B, E any] struct{}

// Fmap implements Functor for the fallible-result family.
func (ResultKind[A, B, E]) Fmap(fa Result[A, E], f func(A) B) Result[B, E] {
	return MapResult(fa, f)
}

// Pure implements Applicative for the fallible-result family: the canonical
// single-value container is a success.
func (ResultKind[A, B, E]) Pure(a A) Result[A, E] {
	return Ok[A, E](a)
}

// Apply implements Applicative for the fallible-result family.
func (ResultKind[A, B, E]) Apply(fa Result[A, E], ff Result[func(A) B, E]) Result[B, E] {
	return ApplyResult(fa, ff)
}

// Bind implements Monad for the fallible-result family.
func (ResultKind[A, B, E]) Bind(fa Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	return BindResult(fa, f)
}

// ResultBikind is the kind witness of the two-slot view of Result, mapping
// (A, B) to (C, D). The zero value is ready to use.
type ResultBikind[A, B, C, D any] struct{}

// Bimap implements Bifunctor for the fallible-result family.
func (ResultBikind[A, B, C, D]) Bimap(p Result[A, B], f func(A) C, g func(B) D) Result[C, D] {
	return BimapResult(p, f, g)
}

// First implements Bifunctor for the fallible-result family.
func (ResultBikind[A, B, C, D]) First(p Result[A, B], f func(A) C) Result[C, B] {
	return FirstResult(p, f)
}

// Second implements Bifunctor for the fallible-result family.
func (ResultBikind[A, B, C, D]) Second(p Result[A, B], g func(B) D) Result[A, D] {
	return SecondResult(p, g)
}

// Witness-to-family consistency, checked at compile time.
var (
	_ Monad[Result[int, string], Result[bool, string], Result[func(int) bool, string], int, bool] = ResultKind[int, bool, string]{}
	_ Bifunctor[Result[int, string], Result[bool, error], Result[bool, string], Result[int, error], int, string, bool, error] = ResultBikind[int, string, bool, error]{}
)
