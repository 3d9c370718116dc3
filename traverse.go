// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import (
	"fmt"
	"maps"
	"slices"
)

// Leaf optics over slices and maps, built purely on the core encoding.
// They are ordinary clients of [Custom], [Lens], and [Map2]; anything
// here could live outside the package.

// Each returns a traversal over every element of a []T state. An empty
// slice yields zero foci and passes through untouched.
func Each[T any]() Optic {
	return Custom(KindTraversal, func(f Functorisor, state Erased) (Wrapped, error) {
		xs := state.([]T)
		if len(xs) == 0 {
			return f.Pure(state), nil
		}
		acc := f.Pure([]T{})
		for _, x := range xs {
			wx, err := f.Call(x)
			if err != nil {
				return nil, err
			}
			acc, err = Map2(acc, wx, func(a, v Erased) Erased {
				return append(a.([]T), v.(T))
			})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})
}

// Index returns a lens onto element i of a []T. Rebuilding copies the
// slice; the input is never mutated. Evaluation fails when i is out of
// range for the supplied state.
func Index[T any](i int) Optic {
	return Custom(KindLens, func(f Functorisor, state Erased) (Wrapped, error) {
		xs := state.([]T)
		if i < 0 || i >= len(xs) {
			return nil, fmt.Errorf("optics: index %d out of range for length %d", i, len(xs))
		}
		fa, err := f.Call(xs[i])
		if err != nil {
			return nil, err
		}
		return fa.Fmap(func(v Erased) Erased {
			out := slices.Clone(xs)
			out[i] = v.(T)
			return out
		}), nil
	})
}

// Key returns a lens onto m[k] of a map[K]V state. Getting a missing key
// focuses V's zero value; rebuilding copies the map.
func Key[K comparable, V any](k K) Optic {
	return Lens(
		func(m map[K]V) V { return m[k] },
		func(m map[K]V, v V) map[K]V {
			out := make(map[K]V, len(m)+1)
			maps.Copy(out, m)
			out[k] = v
			return out
		},
	)
}

// Filtered returns a traversal that focuses the whole state only when it
// satisfies pred; otherwise the state passes through with zero foci.
// Note the usual caveat: writes that break pred make repeated application
// non-idempotent.
func Filtered[T any](pred func(T) bool) Optic {
	return Custom(KindTraversal, func(f Functorisor, state Erased) (Wrapped, error) {
		v := state.(T)
		if !pred(v) {
			return f.Pure(state), nil
		}
		return f.Call(v)
	})
}
