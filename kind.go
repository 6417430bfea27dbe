// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package funk

// Capability interfaces over container families.
//
// A container family ("type constructor") cannot be a type parameter in Go,
// so the interfaces are stated over the applied types instead: FA and FB are
// the same family applied to element types A and B, and FF is the family
// applied to func(A) B. The binding between them is carried by the family's
// zero-sized kind witness, which is the only type that satisfies the
// interface with a consistent assignment — witness-to-family consistency is
// a compile-time property, not a runtime check.

// Functor is the capability to transform the element of a container while
// preserving its structure: the number and arrangement of slots is
// unchanged, only element values change.
//
// Laws, for every instance:
//   - identity: Fmap(fa, Identity) == fa
//   - composition: Fmap(Fmap(fa, f), g) == Fmap(fa, x -> g(f(x)))
type Functor[FA, FB, A, B any] interface {
	// Fmap applies f to each element of fa, yielding the same-family
	// container of B. The input container is consumed by value.
	Fmap(fa FA, f func(A) B) FB
}

// Applicative extends Functor with lifting a bare value into the family's
// canonical single-value container and applying a container of functions to
// a container of values, combined per the family's own policy.
//
// Laws, for every instance:
//   - identity: Apply(v, Pure(Identity)) == v
//   - homomorphism: Apply(Pure(x), Pure(f)) == Pure(f(x))
//   - interchange: Apply(Pure(y), u) == Apply(u, Pure(f -> f(y)))
//   - composition: chained Applys associate
type Applicative[FA, FB, FF, A, B any] interface {
	Functor[FA, FB, A, B]

	// Pure lifts a into the minimal container of this family holding
	// exactly that value.
	Pure(a A) FA

	// Apply applies each function in ff to each value in fa. FF is the
	// same family applied to func(A) B.
	Apply(fa FA, ff FF) FB
}

// Monad extends Applicative with sequencing a container-producing step.
type Monad[FA, FB, FF, A, B any] interface {
	Applicative[FA, FB, FF, A, B]

	// Bind runs f on each element of fa and flattens the produced
	// same-family containers per the family's combination rule.
	//
	// Laws, for every instance:
	//   - left identity: Bind(Pure(a), f) == f(a)
	//   - right identity: Bind(m, Pure) == m
	//   - associativity: Bind(Bind(m, f), g) == Bind(m, x -> Bind(f(x), g))
	Bind(fa FA, f func(A) FB) FB
}

// Bifunctor is the capability to transform either of two independent
// element slots of a two-slot family. PAB is the family applied to (A, B),
// PCD to (C, D), PCB to (C, B), and PAD to (A, D).
//
// Laws: Bimap(p, Identity, Identity) == p, and sequential Bimaps compose
// slot-wise.
type Bifunctor[PAB, PCD, PCB, PAD, A, B, C, D any] interface {
	// Bimap applies f to the first slot and g to the second. In a tagged
	// union exactly one slot is populated; the slot-appropriate function
	// is applied and the other slot's type changes unobserved.
	Bimap(p PAB, f func(A) C, g func(B) D) PCD

	// First maps only the first slot.
	First(p PAB, f func(A) C) PCB

	// Second maps only the second slot.
	Second(p PAB, g func(B) D) PAD
}

// Witness-passing helpers.
//
// Each helper orders its type parameters so the ones not inferable from
// value arguments come first: a witness value is a concrete type and Go
// does not unify it against its constraint, so result-side applied types
// must be supplied explicitly at non-generic call sites, e.g.
// Fmap[Option[string]](OptionKind[int, string]{}, Some(5), strconv.Itoa).
// Inside generic client code all parameters are already bound.

// Fmap applies f through the functor witness w.
func Fmap[FB any, W Functor[FA, FB, A, B], FA, A, B any](w W, fa FA, f func(A) B) FB {
	return w.Fmap(fa, f)
}

// Lift lifts a bare value through the applicative witness w.
func Lift[FA, FB, FF, B any, W Applicative[FA, FB, FF, A, B], A any](w W, a A) FA {
	return w.Pure(a)
}

// Ap applies a container of functions to a container of values through the
// applicative witness w.
func Ap[FB, A, B any, W Applicative[FA, FB, FF, A, B], FA, FF any](w W, fa FA, ff FF) FB {
	return w.Apply(fa, ff)
}

// FlatMap sequences a container-producing step through the monad witness w.
func FlatMap[FF, B any, W Monad[FA, FB, FF, A, B], FA, FB, A any](w W, fa FA, f func(A) FB) FB {
	return w.Bind(fa, f)
}
