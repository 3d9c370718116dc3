// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Review creates an optic that supports only construction: pack wraps a
// focus up into a complete state. A Review has no forward evaluation —
// [Re] reverses it into a Getter over pack, and [Construct] builds states
// through it.
func Review[S, A any](pack func(A) S) Optic {
	return reviewOptic{pack: func(v Erased) Erased { return pack(v.(A)) }}
}

type reviewOptic struct {
	pack func(Erased) Erased
}

func (reviewOptic) Apply(Functorisor, Erased) (Wrapped, error) {
	return nil, &UnimplementedOpticError{Op: "Apply", Optic: "Review"}
}

func (reviewOptic) Kind() Kind { return KindReview }

// Re returns a Getter over pack.
func (o reviewOptic) Re() (Optic, error) {
	return getterOptic{get: o.pack}, nil
}

// Prism creates an optic from a pack/unpack pair where unpacking can fail:
// unpack reports its outcome through [Option]. A prism focuses zero or one
// part; an absent focus passes the state through untouched and is never an
// error.
func Prism[S, A any](unpack func(S) Option[A], pack func(A) S) Optic {
	return prismOptic{
		unpack: func(state Erased) Option[Erased] {
			focus, ok := unpack(state.(S)).Get()
			if !ok {
				return None[Erased]()
			}
			return Some[Erased](focus)
		},
		pack: func(v Erased) Erased { return pack(v.(A)) },
	}
}

type prismOptic struct {
	unpack func(Erased) Option[Erased]
	pack   func(Erased) Erased
}

func (o prismOptic) Apply(f Functorisor, state Erased) (Wrapped, error) {
	focus, ok := o.unpack(state).Get()
	if !ok {
		return f.Pure(state), nil
	}
	fa, err := f.Call(focus)
	if err != nil {
		return nil, err
	}
	return fa.Fmap(o.pack), nil
}

func (prismOptic) Kind() Kind { return KindPrism }

// Re returns a Getter over pack.
func (o prismOptic) Re() (Optic, error) {
	return getterOptic{get: o.pack}, nil
}
