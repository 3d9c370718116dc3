// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Getter creates an optic that wraps a derivation function: get takes a
// state and returns a value derived from it. A Getter is a Fold restricted
// to exactly one focus; it never rebuilds state, so Setter operations fail
// the capability check.
func Getter[S, A any](get func(S) A) Optic {
	return getterOptic{get: func(state Erased) Erased { return get(state.(S)) }}
}

type getterOptic struct {
	get func(Erased) Erased
}

// Apply maps the derivation over the inner dispatcher's accumulated foci.
// Applying get after the inner stage is what keeps [Re] chains in pack
// order: the outermost pack runs last.
func (o getterOptic) Apply(f Functorisor, state Erased) (Wrapped, error) {
	w, err := f.Call(state)
	if err != nil {
		return nil, err
	}
	return Const{Value: mapAcc(w.Unwrap(), o.get)}, nil
}

func (getterOptic) Kind() Kind { return KindGetter }

// Lens creates an optic from a get/put pair. get derives the focus from a
// state; put builds a new state from the old state and a new focus. A lens
// focuses exactly one part that is always present.
//
// Callers are responsible for the lens laws:
//
//	get(put(s, v)) == v
//	put(s, get(s)) == s
func Lens[S, A any](get func(S) A, put func(S, A) S) Optic {
	return lensOptic{
		get: func(state Erased) Erased { return get(state.(S)) },
		put: func(state, v Erased) Erased { return put(state.(S), v.(A)) },
	}
}

type lensOptic struct {
	get func(Erased) Erased
	put func(state, v Erased) Erased
}

func (o lensOptic) Apply(f Functorisor, state Erased) (Wrapped, error) {
	fa, err := f.Call(o.get(state))
	if err != nil {
		return nil, err
	}
	return fa.Fmap(func(v Erased) Erased { return o.put(state, v) }), nil
}

func (lensOptic) Kind() Kind { return KindLens }
