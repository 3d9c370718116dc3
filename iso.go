// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import "fmt"

// Isomorphism creates an optic from two mirror conversions that move
// between a state and a focus without losing information. The backwards
// function needs nothing from the original state, which is what separates
// an isomorphism from a lens and makes it reversible with [Flip].
//
// Callers are responsible for the round-trip laws (not checked at
// runtime):
//
//	backwards(forwards(s)) == s
//	forwards(backwards(a)) == a
func Isomorphism[S, A any](forwards func(S) A, backwards func(A) S) Optic {
	return isoOptic{
		forwards:  func(state Erased) Erased { return forwards(state.(S)) },
		backwards: func(v Erased) Erased { return backwards(v.(A)) },
	}
}

type isoOptic struct {
	forwards, backwards func(Erased) Erased
}

func (o isoOptic) Apply(f Functorisor, state Erased) (Wrapped, error) {
	fa, err := f.Call(o.forwards(state))
	if err != nil {
		return nil, err
	}
	return fa.Fmap(o.backwards), nil
}

func (isoOptic) Kind() Kind { return KindIsomorphism }

// Flipped swaps forwards and backwards, yielding another Isomorphism.
func (o isoOptic) Flipped() (Optic, error) {
	return isoOptic{forwards: o.backwards, backwards: o.forwards}, nil
}

// Re returns a Getter over backwards, so reversed chains pack outermost
// last like every other Reviewer. The result is read-only: Setter and
// Review operations on it fail the capability check. [Flip] is the
// reversal that keeps the full Isomorphism capability.
func (o isoOptic) Re() (Optic, error) {
	return getterOptic{get: o.backwards}, nil
}

// Identity returns the trivial isomorphism focusing the whole state. It
// is the neutral element of composition and is removed during flattening.
func Identity() Optic { return trivialOptic{} }

type trivialOptic struct{}

func (trivialOptic) Apply(f Functorisor, state Erased) (Wrapped, error) {
	return f.Call(state)
}

func (trivialOptic) Kind() Kind { return KindIsomorphism }

func (trivialOptic) Flipped() (Optic, error) { return trivialOptic{}, nil }

func (trivialOptic) Re() (Optic, error) { return trivialOptic{}, nil }

// ErrorIso returns a diagnostic optic that fails every evaluation with
// err. When format is non-empty it is applied to the state as an fmt verb
// template and the result wraps err, so errors.Is still matches.
//
//	optics.ErrorIso(errBadState, "applied to %v")
func ErrorIso(err error, format string) Optic {
	return errorOptic{err: err, format: format}
}

type errorOptic struct {
	err    error
	format string
}

func (o errorOptic) Apply(_ Functorisor, state Erased) (Wrapped, error) {
	if o.format == "" {
		return nil, o.err
	}
	return nil, fmt.Errorf("%s: %w", fmt.Sprintf(o.format, state), o.err)
}

func (errorOptic) Kind() Kind { return KindIsomorphism }

// Flipped returns the optic unchanged; reversing a diagnostic still fails
// with the same error.
func (o errorOptic) Flipped() (Optic, error) { return o, nil }

func (o errorOptic) Re() (Optic, error) { return o, nil }
