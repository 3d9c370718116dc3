// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import "fmt"

// Require checks that the optic's kind carries every capability of
// required, returning a [CapabilityError] otherwise. It is the
// precondition every public operation runs before evaluating anything.
func Require(o Optic, required Kind) error {
	return require("Require", o, required)
}

func require(op string, o Optic, required Kind) error {
	if k := o.Kind(); !k.Satisfies(required) {
		return &CapabilityError{Op: op, Required: required, Have: k}
	}
	return nil
}

// View returns the focus within state. Multiple foci are joined as a
// monoid; see [Semigroup] for types without a built-in append. Requires
// Fold. Fails with [EmptyFocusError] when the state yields no focus.
func View[A any](o Optic, state Erased) (A, error) {
	var zero A
	if err := require("View", o, KindFold); err != nil {
		return zero, err
	}
	f := NewFunctorisor(
		func(Erased) Wrapped { return Const{Value: focusAcc{}} },
		func(v Erased) (Wrapped, error) { return Const{Value: focusAcc{ok: true, value: v}}, nil },
	)
	w, err := o.Apply(f, state)
	if err != nil {
		return zero, err
	}
	acc := w.Unwrap().(focusAcc)
	if !acc.ok {
		return zero, &EmptyFocusError{}
	}
	return acc.value.(A), nil
}

// ToListOf returns every focus within state as a slice in traversal
// order, possibly empty. Requires Fold.
func ToListOf[A any](o Optic, state Erased) ([]A, error) {
	if err := require("ToListOf", o, KindFold); err != nil {
		return nil, err
	}
	f := NewFunctorisor(
		func(Erased) Wrapped { return Const{Value: []Erased(nil)} },
		func(v Erased) (Wrapped, error) { return Const{Value: []Erased{v}}, nil },
	)
	w, err := o.Apply(f, state)
	if err != nil {
		return nil, err
	}
	raw := w.Unwrap().([]Erased)
	out := make([]A, len(raw))
	for i, v := range raw {
		out[i] = v.(A)
	}
	return out, nil
}

// Over applies fn to every focus within state and returns the rebuilt
// state; structure outside the foci is untouched and the input is never
// mutated. Requires Setter.
func Over[S, A any](o Optic, state S, fn func(A) A) (S, error) {
	var zero S
	if err := require("Over", o, KindSetter); err != nil {
		return zero, err
	}
	f := NewFunctorisor(
		func(v Erased) Wrapped { return Ident{Value: v} },
		func(v Erased) (Wrapped, error) { return Ident{Value: fn(v.(A))}, nil },
	)
	w, err := o.Apply(f, state)
	if err != nil {
		return zero, err
	}
	return w.Unwrap().(S), nil
}

// Set rewrites every focus within state to value and returns the rebuilt
// state. Equivalent to Over with a constant function. Requires Setter.
func Set[S, A any](o Optic, state S, value A) (S, error) {
	var zero S
	if err := require("Set", o, KindSetter); err != nil {
		return zero, err
	}
	f := NewFunctorisor(
		func(v Erased) Wrapped { return Ident{Value: v} },
		func(Erased) (Wrapped, error) { return Ident{Value: value}, nil },
	)
	w, err := o.Apply(f, state)
	if err != nil {
		return zero, err
	}
	return w.Unwrap().(S), nil
}

// Construct rebuilds a full state from one focus through the optic's
// pack. Requires Review.
func Construct[S any](o Optic, focus Erased) (S, error) {
	var zero S
	if err := require("Construct", o, KindReview); err != nil {
		return zero, err
	}
	re, err := reOf("Construct", o)
	if err != nil {
		return zero, err
	}
	return View[S](re, focus)
}

// Re reverses a construction-capable optic into a Getter over its pack.
// Requires Review.
func Re(o Optic) (Optic, error) {
	if err := require("Re", o, KindReview); err != nil {
		return nil, err
	}
	return reOf("Re", o)
}

// Flip reverses an isomorphism, swapping its forwards and backwards
// conversions. Requires Isomorphism.
func Flip(o Optic) (Optic, error) {
	if err := require("Flip", o, KindIsomorphism); err != nil {
		return nil, err
	}
	fl, ok := o.(Flipper)
	if !ok {
		return nil, &UnimplementedOpticError{Op: "Flip", Optic: fmt.Sprintf("%T", o)}
	}
	return fl.Flipped()
}

func reOf(op string, o Optic) (Optic, error) {
	r, ok := o.(Reviewer)
	if !ok {
		return nil, &UnimplementedOpticError{Op: op, Optic: fmt.Sprintf("%T", o)}
	}
	return r.Re()
}
