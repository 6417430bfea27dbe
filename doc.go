// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package funk provides generic functional abstractions — Functor,
// Applicative, Monad, and Bifunctor — over container families in Go.
//
// The same generic client code can be written once against "some container
// of A" and instantiated over an optional value ([Option]), a fallible
// result ([Result]), or an ordered sequence (a plain slice), without knowing
// which family it runs over.
//
// # Design Philosophy
//
// funk provides:
//   - Minimal but complete capability interfaces for mapping, lifting,
//     applying, and sequencing over containers
//   - Witness-based dictionary passing for compile-time dispatch — no
//     runtime tags, no reflection, no interface{} payloads
//   - Three reference families with law-tested instances
//
// # Kind Witnesses
//
// Go generics cannot pass a type constructor (a generic type with its
// element slot still open) as a type parameter, and methods cannot declare
// their own type parameters. funk therefore encodes "the family this
// container belongs to" as a zero-sized witness value whose methods carry
// the family's operations, typed against the applied container types:
//
//   - [OptionKind]: the optional-value family over [Option]
//   - [ResultKind]: the fallible-result family over [Result], with the
//     error type fixed per instantiation
//   - [SeqKind]: the ordered-sequence family over slices
//   - [ResultBikind]: the two-slot view of [Result] for [Bifunctor]
//
// A witness instantiation binds the applied types together: OptionKind[A, B]
// satisfies Monad[Option[A], Option[B], Option[func(A) B], A, B] and nothing
// else, so a family whose declared witness does not match its own shape
// fails to compile. Each instance file carries a var _ assertion making the
// obligation explicit.
//
// # Core Operations
//
// Minimal definition per family: Pure (unit) and Bind are necessary and
// sufficient. Fmap and Apply are kept as first-class operations so each
// family can use its native traversal instead of going through Bind.
//
// Capability interfaces:
//
//   - [Functor]: Fmap — transform the element, preserve the structure
//   - [Applicative]: adds Pure (lift a bare value) and Apply (apply a
//     container of functions to a container of values)
//   - [Monad]: adds Bind (sequence a container-producing step, flattening)
//   - [Bifunctor]: Bimap, First, Second over two independent element slots
//
// Witness-passing helpers mirror the interfaces as free functions:
// [Fmap], [Lift], [Ap], [FlatMap]. Inside generic client code every type
// parameter is already bound and the helpers infer everything; at
// non-generic call sites the result types are not inferable from a witness
// value, so each helper orders its type parameters with the uninferable
// ones first, keeping the explicit prefix short.
//
// # Reference Families
//
// Per-family combination policy:
//
//   - Option: Apply requires both sides present, else absent; Bind
//     propagates absence
//   - Result: Apply propagates the first error, value side checked first;
//     Bind propagates the error
//   - Seq: Apply is the Cartesian product, functions outer and values
//     inner, in source order; Bind concatenates in order
//
// Each family also exposes its operations directly ([MapOption],
// [ApplyResult], [BindSeq], ...) for callers that do not need the
// abstraction.
//
// # Function Utilities
//
// Free-standing helpers independent of the capability interfaces:
//
//   - [Identity]: the identity function
//   - [Compose]: right-to-left composition
//   - [Pipe]: left-to-right composition
//   - [Curry], [Uncurry]: between two-argument and staged one-argument form
//   - [Flip]: swap a two-argument function's arguments
//   - [OptionToResult]: absence to a caller-supplied error
//
// The function returned by Curry captures its first argument for reuse:
// the curried inner function may be called any number of times.
//
// # Text Buffer
//
// [TextBuffer] is a self-contained fixed-capacity byte buffer used by the
// test suite to format values without heap-allocated strings. It panics if
// asked to hold more than its capacity; this is a precondition violation,
// not a recoverable error. It has no interaction with the abstraction
// layer.
//
// Everything in this package is a pure, synchronous, terminating value
// transformation: no operation performs I/O, blocks, or shares mutable
// state between calls.
package funk
