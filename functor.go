// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import (
	"fmt"
	"reflect"
)

// Erased represents a type-erased value flowing through optic evaluation.
// The evaluation core is monomorphic over Erased so that one optic value
// can pass through heterogeneous composition chains. Concrete types are
// recovered via type assertions where the generic constructors and
// operations meet the erased core.
type Erased = any

// Wrapped is the functor value threaded through an optic evaluation.
// It is a closed two-variant interface: [Ident] for transformation mode
// and [Const] for extraction mode. These two instances are the entire
// interpreter behind the encoding — no further implementations exist.
type Wrapped interface {
	// Fmap applies fn inside the wrapper. Ident transforms its value;
	// Const ignores fn and returns itself unchanged.
	Fmap(fn func(Erased) Erased) Wrapped

	// Unwrap returns the carried value.
	Unwrap() Erased

	wrapped() // unexported marker method
}

// Ident wraps a value being rebuilt. Fmap applies the function, so a
// chain of Fmap calls round-trips the rebuilt structure outward.
type Ident struct{ Value Erased }

// Fmap applies fn to the carried value.
func (w Ident) Fmap(fn func(Erased) Erased) Wrapped { return Ident{Value: fn(w.Value)} }

// Unwrap returns the carried value.
func (w Ident) Unwrap() Erased { return w.Value }

func (Ident) wrapped() {}

// Const wraps an accumulated read-only value. Fmap discards the function,
// so rebuild steps cost nothing during extraction.
type Const struct{ Value Erased }

// Fmap returns the wrapper unchanged.
func (w Const) Fmap(func(Erased) Erased) Wrapped { return w }

// Unwrap returns the accumulated value.
func (w Const) Unwrap() Erased { return w.Value }

func (Const) wrapped() {}

// Map2 combines two Wrapped values of the same shape. For Ident it applies
// fn to both carried values (rebuilding); for Const it ignores fn and
// joins the accumulators via monoid append (extracting). Map2 is what
// lets a multi-focus traversal stay free of per-mode branching.
//
// Mixing shapes indicates a bug in an optic variant, not caller error.
func Map2(a, b Wrapped, fn func(Erased, Erased) Erased) (Wrapped, error) {
	switch av := a.(type) {
	case Ident:
		bv, ok := b.(Ident)
		if !ok {
			return nil, &UnimplementedOpticError{Op: "Map2", Optic: "mixed functor shapes"}
		}
		return Ident{Value: fn(av.Value, bv.Value)}, nil
	case Const:
		bv, ok := b.(Const)
		if !ok {
			return nil, &UnimplementedOpticError{Op: "Map2", Optic: "mixed functor shapes"}
		}
		joined, err := mappend(av.Value, bv.Value)
		if err != nil {
			return nil, err
		}
		return Const{Value: joined}, nil
	}
	return nil, &UnimplementedOpticError{Op: "Map2", Optic: fmt.Sprintf("%T", a)}
}

// mapAcc maps fn inside an extraction accumulator: over the held focus of
// a View accumulator, over every element of a ToListOf accumulator. Any
// other shape is a bare focus and fn applies directly.
func mapAcc(acc Erased, fn func(Erased) Erased) Erased {
	switch av := acc.(type) {
	case focusAcc:
		if !av.ok {
			return av
		}
		return focusAcc{ok: true, value: fn(av.value)}
	case []Erased:
		out := make([]Erased, len(av))
		for i, v := range av {
			out[i] = fn(v)
		}
		return out
	}
	return fn(acc)
}

// Semigroup is the escape hatch for focus types with no built-in append.
// View uses it to join foci of types the package does not know about.
type Semigroup interface {
	Append(other Erased) Erased
}

// focusAcc accumulates foci during View. The zero value means no focus
// seen yet; it is the identity of the accumulation monoid. Deliberately
// distinct from [Option]: absence of a focus during a fold is internal
// bookkeeping, not Prism vocabulary.
type focusAcc struct {
	ok    bool
	value Erased
}

// mappend joins two extraction-mode accumulators. View accumulators
// (focusAcc) join their inner values as a monoid; ToListOf accumulators
// ([]Erased) concatenate; anything else falls through to the focus-value
// monoid.
func mappend(a, b Erased) (Erased, error) {
	switch av := a.(type) {
	case focusAcc:
		bv, ok := b.(focusAcc)
		if !ok {
			return nil, fmt.Errorf("%w: %T and %T", ErrUnappendable, a, b)
		}
		if !av.ok {
			return bv, nil
		}
		if !bv.ok {
			return av, nil
		}
		joined, err := appendValues(av.value, bv.value)
		if err != nil {
			return nil, err
		}
		return focusAcc{ok: true, value: joined}, nil
	case []Erased:
		bv, ok := b.([]Erased)
		if !ok {
			return nil, fmt.Errorf("%w: %T and %T", ErrUnappendable, a, b)
		}
		out := make([]Erased, 0, len(av)+len(bv))
		out = append(out, av...)
		out = append(out, bv...)
		return out, nil
	}
	return appendValues(a, b)
}

// appendValues joins two focus values as a monoid: strings and slices
// concatenate, numbers add. Both values must share one exact dynamic
// type — same-family widths (int and int64, say) do not mix. Beyond the
// fast paths, numeric widths, named strings, and slice element types
// resolve through reflect; everything else must implement [Semigroup] or
// the append fails with [ErrUnappendable].
func appendValues(a, b Erased) (Erased, error) {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av + bv, nil
		}
	case int:
		if bv, ok := b.(int); ok {
			return av + bv, nil
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av + bv, nil
		}
	case []Erased:
		if bv, ok := b.([]Erased); ok {
			out := make([]Erased, 0, len(av)+len(bv))
			out = append(out, av...)
			out = append(out, bv...)
			return out, nil
		}
	}
	if s, ok := a.(Semigroup); ok {
		return s.Append(b), nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() && ra.Type() == rb.Type() {
		switch ra.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out := reflect.New(ra.Type()).Elem()
			out.SetInt(ra.Int() + rb.Int())
			return out.Interface(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			out := reflect.New(ra.Type()).Elem()
			out.SetUint(ra.Uint() + rb.Uint())
			return out.Interface(), nil
		case reflect.Float32, reflect.Float64:
			out := reflect.New(ra.Type()).Elem()
			out.SetFloat(ra.Float() + rb.Float())
			return out.Interface(), nil
		case reflect.Complex64, reflect.Complex128:
			out := reflect.New(ra.Type()).Elem()
			out.SetComplex(ra.Complex() + rb.Complex())
			return out.Interface(), nil
		case reflect.String:
			out := reflect.New(ra.Type()).Elem()
			out.SetString(ra.String() + rb.String())
			return out.Interface(), nil
		case reflect.Slice:
			out := reflect.MakeSlice(ra.Type(), 0, ra.Len()+rb.Len())
			out = reflect.AppendSlice(out, ra)
			out = reflect.AppendSlice(out, rb)
			return out.Interface(), nil
		}
	}
	return nil, fmt.Errorf("%w: %T and %T", ErrUnappendable, a, b)
}
