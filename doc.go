// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package optics provides first-class composable optics in Go.
//
// An optic is a value that abstracts getting, setting, traversing, and
// constructing parts of a larger structure behind one uniform
// representation: a generalized van Laarhoven encoding. Every optic is
// a function that, given a caller-supplied two-mode mapping
// [Functorisor] turning focus -> [Wrapped] focus, produces
// state -> [Wrapped] state. One representation serves eight capability
// variants — Fold, Setter, Getter, Traversal, Lens, Review, Prism, and
// Isomorphism — selected statically by the [Kind] capability lattice.
//
// # Design Philosophy
//
// optics provides:
//   - A single type-erased evaluation core behind a fully generic
//     constructor and operation surface
//   - A closed two-variant functor interpreter ([Ident], [Const]) —
//     the entire machinery behind read and write evaluation
//   - Structural capability tags checked before evaluation, never during
//
// The package follows the same boundary discipline as defunctionalized
// frame chains: internals are monomorphic over [Erased], and concrete
// types are recovered via type assertions where generic constructors and
// operations meet the erased core.
//
// # Capability Lattice
//
// A [Kind] names the most specific capability an optic structurally
// satisfies. Subsumption runs downward:
//
//   - Getter is a Fold restricted to one focus
//   - Traversal is both a Fold and a Setter
//   - Lens is both a Getter and a Traversal
//   - Prism is both a Traversal and a Review
//   - Isomorphism is both a Lens and a Prism
//   - Equality is an Isomorphism (tag only, currently unused)
//
// Composing optics of kinds K1 and K2 yields [Meet](K1, K2); when no
// shared capability remains, [Compose] fails with [StructuralKindError]
// at construction time, never at use time.
//
// # Constructors
//
//   - [Getter]: derive a focus from a state, read-only
//   - [Lens]: get/put pair, exactly one always-present focus
//   - [Review]: construction only, from focus to state
//   - [Prism]: partial unpack ([Option]) plus pack, zero-or-one focus
//   - [Isomorphism]: mirror conversions, reversible with [Flip]
//   - [Identity]: the trivial isomorphism, neutral under composition
//   - [ErrorIso]: fails every evaluation with a caller-supplied error
//   - [Custom]: raw apply function with a declared kind, the extension
//     point for leaf optics outside this package
//
// Convenience leaf optics built on the core encoding:
//
//   - [Each]: traversal over every element of a slice
//   - [Index]: lens onto one element of a slice
//   - [Key]: lens onto one key of a map, copy-on-write
//   - [Filtered]: traversal passing through only matching states
//
// # Operations
//
// Every operation checks the required capability first and returns
// [CapabilityError] on mismatch — operations never partially execute.
//
//   - [View]: join all foci as a monoid (requires Fold)
//   - [ToListOf]: every focus in traversal order (requires Fold)
//   - [Over]: rewrite every focus through a function (requires Setter)
//   - [Set]: rewrite every focus to a constant (requires Setter)
//   - [Construct]: rebuild a state from one focus (requires Review)
//   - [Re]: reverse a construction-capable optic into a Getter
//     (requires Review)
//   - [Flip]: reverse an isomorphism (requires Isomorphism)
//
// # Concurrency
//
// Optics are immutable and stateless beyond construction-time closures;
// they are safely shared across goroutines without synchronization.
// Over and Set never mutate the input state — each call returns a newly
// built structure.
//
// # Example
//
//	second := optics.Index[int](1)
//	got, _ := optics.View[int](second, []int{1, 2, 3})
//	// got == 2
//	updated, _ := optics.Set(second, []int{1, 2, 3}, 9)
//	// updated == []int{1, 9, 3}
//
//	chars := optics.Isomorphism(
//		func(r rune) string { return string(r) },
//		func(s string) rune { return []rune(s)[0] },
//	)
//	s, _ := optics.View[string](chars, 'A')
//	// s == "A"
package optics
