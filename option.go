// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package funk

// Option represents a value that is either present or absent.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOr returns the value if present, otherwise fallback.
func (o Option[A]) GetOr(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies f to the value if present. Absence is preserved.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// ApplyOption applies a present function to a present value. If either side
// is absent, the result is absent.
func ApplyOption[A, B any](o Option[A], of Option[func(A) B]) Option[B] {
	if o.present && of.present {
		return Some(of.value(o.value))
	}
	return None[B]()
}

// BindOption sequences an Option-producing step. Absence propagates without
// calling f.
func BindOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// OptionKind is the kind witness of the optional-value family. The zero
// value is ready to use.
type OptionKind[A, B any] struct{}

// Fmap implements Functor for the optional-value family.
func (OptionKind[A, B]) Fmap(fa Option[A], f func(A) B) Option[B] {
	return MapOption(fa, f)
}

// Pure implements Applicative for the optional-value family: the canonical
// single-value container is a present value.
func (OptionKind[A, B]) Pure(a A) Option[A] {
	return Some(a)
}

// Apply implements Applicative for the optional-value family.
func (OptionKind[A, B]) Apply(fa Option[A], ff Option[func(A) B]) Option[B] {
	return ApplyOption(fa, ff)
}

// Bind implements Monad for the optional-value family.
func (OptionKind[A, B]) Bind(fa Option[A], f func(A) Option[B]) Option[B] {
	return BindOption(fa, f)
}

// Witness-to-family consistency: OptionKind applied to (A, B) must operate
// on exactly Option[A] and Option[B]. Checked at compile time.
var _ Monad[Option[int], Option[string], Option[func(int) string], int, string] = OptionKind[int, string]{}
