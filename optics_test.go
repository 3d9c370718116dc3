// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics_test

import (
	"strconv"

	"code.hybscloud.com/optics"
)

// Shared fixtures. Leaf optics here are deliberately written as ordinary
// client code of the public constructors.

// parseIntPrism unpacks a decimal string into an int, packing back via
// formatting. The canonical zero-or-one-focus optic.
func parseIntPrism() optics.Optic {
	return optics.Prism(
		func(s string) optics.Option[int] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return optics.None[int]()
			}
			return optics.Some(n)
		},
		strconv.Itoa,
	)
}

// runeStringIso converts between a rune and its one-rune string.
func runeStringIso() optics.Optic {
	return optics.Isomorphism(
		func(r rune) string { return string(r) },
		func(s string) rune { return []rune(s)[0] },
	)
}

// negateIso mirrors an int onto its negation; self-inverse.
func negateIso() optics.Optic {
	neg := func(n int) int { return -n }
	return optics.Isomorphism(neg, neg)
}

// secondLens focuses index 1 of an []int.
func secondLens() optics.Optic {
	return optics.Lens(
		func(s []int) int { return s[1] },
		func(s []int, v int) []int {
			out := append([]int(nil), s...)
			out[1] = v
			return out
		},
	)
}

// setterOnly applies the transformation to the whole state without any
// ability to read foci back.
func setterOnly() optics.Optic {
	return optics.Custom(optics.KindSetter, func(f optics.Functorisor, state optics.Erased) (optics.Wrapped, error) {
		return f.Call(state)
	})
}

// foldOnly views the whole state without any ability to rebuild it.
func foldOnly() optics.Optic {
	return optics.Custom(optics.KindFold, func(f optics.Functorisor, state optics.Erased) (optics.Wrapped, error) {
		return f.Call(state)
	})
}
