// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package funk

// Function composition utilities. These operate on plain functions and are
// independent of the capability interfaces.

// Identity returns its argument unchanged.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func Identity[A any](a A) A { return a }

// Compose composes two functions right to left: Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Pipe composes two functions left to right: Pipe(f, g)(x) == g(f(x)).
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Curry converts a two-argument function into a function of the first
// argument returning a function of the second. The inner function captures
// the first argument and may be called any number of times.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry is the exact inverse of Curry.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Flip swaps a two-argument function's argument order.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// OptionToResult converts a present value into a success and an absent one
// into the supplied error.
func OptionToResult[A, E any](o Option[A], err E) Result[A, E] {
	if a, ok := o.Get(); ok {
		return Ok[A, E](a)
	}
	return Err[A](err)
}
