// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import "fmt"

// Compose chains optics left to right: each optic's focus becomes the
// next optic's state. Composition is associative, allocates a new optic,
// and never mutates its operands.
//
// Construction flattens the chain: identity elements are dropped, nested
// compositions are spliced in, an empty chain collapses to [Identity],
// and a singleton collapses to its element so capability checks run on
// the simplest object. The composed kind is [Meet] over all element
// kinds; when no valid kind exists Compose fails immediately with
// [StructuralKindError].
func Compose(optics ...Optic) (Optic, error) {
	elems := flatten(optics)
	if len(elems) == 0 {
		return Identity(), nil
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	c := composed{elems: elems}
	if c.Kind() == KindInvalid {
		kinds := make([]Kind, len(elems))
		for i, o := range elems {
			kinds[i] = o.Kind()
		}
		return nil, &StructuralKindError{Kinds: kinds}
	}
	return c, nil
}

// flatten drops identity elements and splices nested compositions.
// Associativity is structural: a spliced chain evaluates identically to
// the nested one.
func flatten(optics []Optic) []Optic {
	out := make([]Optic, 0, len(optics))
	for _, o := range optics {
		switch v := o.(type) {
		case trivialOptic:
			// neutral element
		case composed:
			out = append(out, v.elems...)
		default:
			out = append(out, o)
		}
	}
	return out
}

// composed is a flattened chain of optics. It passes evaluation down to
// its elements without imposing constraints of its own; the elements are
// in charge of what capabilities they support.
type composed struct {
	elems []Optic
}

// Apply folds the mode-dispatcher composition right-to-left and invokes
// the combined dispatcher once on the outer state.
func (c composed) Apply(f Functorisor, state Erased) (Wrapped, error) {
	res := f
	for i := len(c.elems) - 1; i >= 0; i-- {
		res = res.Then(c.elems[i].Apply)
	}
	return res.Call(state)
}

// Kind is the lattice meet of all element kinds.
func (c composed) Kind() Kind {
	k := KindEquality
	for _, o := range c.elems {
		k = Meet(k, o.Kind())
	}
	return k
}

// Flipped reverses element order and flips each element.
func (c composed) Flipped() (Optic, error) {
	out := make([]Optic, 0, len(c.elems))
	for i := len(c.elems) - 1; i >= 0; i-- {
		fl, ok := c.elems[i].(Flipper)
		if !ok {
			return nil, &UnimplementedOpticError{Op: "Flip", Optic: fmt.Sprintf("%T", c.elems[i])}
		}
		flipped, err := fl.Flipped()
		if err != nil {
			return nil, err
		}
		out = append(out, flipped)
	}
	return Compose(out...)
}

// Re maps Re over every element, preserving order.
func (c composed) Re() (Optic, error) {
	out := make([]Optic, 0, len(c.elems))
	for _, e := range c.elems {
		r, ok := e.(Reviewer)
		if !ok {
			return nil, &UnimplementedOpticError{Op: "Re", Optic: fmt.Sprintf("%T", e)}
		}
		re, err := r.Re()
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return Compose(out...)
}
