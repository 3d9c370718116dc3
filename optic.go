// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Optic is a first-class value representing a possibly partial, possibly
// multiple focus inside a state. Optics carry no stored state: evaluation
// state is supplied per call and never retained, so optics are immutable
// and freely shareable.
type Optic interface {
	// Apply runs the optic's van Laarhoven function under the mode
	// dispatcher f. Callers go through the public operations, which
	// select f and check capability first; Apply itself performs no
	// capability checking.
	Apply(f Functorisor, state Erased) (Wrapped, error)

	// Kind reports the most specific capability tag the optic
	// structurally satisfies.
	Kind() Kind
}

// Flipper is implemented by optics whose direction can be reversed.
// [Flip] requires Isomorphism kind first, then this interface.
type Flipper interface {
	Flipped() (Optic, error)
}

// Reviewer is implemented by optics that can rebuild a state from a
// focus. [Re] and [Construct] require Review kind first, then this
// interface.
type Reviewer interface {
	Re() (Optic, error)
}

// Custom builds an optic from a raw apply function and a declared kind.
// It is the extension point for leaf optics defined outside this package:
// slice and map access, filtering predicates, decoding conversions. The
// declared kind is trusted; a kind claiming capabilities apply does not
// honor is a bug in the leaf optic.
func Custom(kind Kind, apply ApplyFunc) Optic {
	return customOptic{k: kind, fn: apply}
}

type customOptic struct {
	k  Kind
	fn ApplyFunc
}

func (o customOptic) Apply(f Functorisor, state Erased) (Wrapped, error) {
	return o.fn(f, state)
}

func (o customOptic) Kind() Kind { return o.k }
