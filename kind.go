// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Kind classifies what operations an optic supports. It is a derived,
// structural property: every concrete variant has a fixed tag, and a
// composition's tag is the lattice meet of its elements' tags.
type Kind uint8

// Kind tags, least to most specific. KindInvalid means no capability
// holds; every operation on an invalid optic fails.
const (
	KindInvalid Kind = iota
	KindFold
	KindSetter
	KindGetter
	KindTraversal
	KindLens
	KindReview
	KindPrism
	KindIsomorphism
	KindEquality
)

// capSet is a bitmask of capability memberships, one bit per Kind tag.
// Subsumption is bit-set inclusion; the meet is bit intersection.
type capSet uint16

const (
	capFold capSet = 1 << iota
	capSetter
	capGetter
	capTraversal
	capLens
	capReview
	capPrism
	capIso
	capEquality
)

// kindCaps is the capability-membership table. It replaces walking an
// inheritance graph: Getter subsumes Fold; Traversal subsumes Fold and
// Setter; Lens subsumes Getter and Traversal; Prism subsumes Traversal
// and Review; Isomorphism subsumes Lens and Prism; Equality subsumes
// Isomorphism.
var kindCaps = [...]capSet{
	KindInvalid:     0,
	KindFold:        capFold,
	KindSetter:      capSetter,
	KindGetter:      capGetter | capFold,
	KindTraversal:   capTraversal | capFold | capSetter,
	KindLens:        capLens | capGetter | capTraversal | capFold | capSetter,
	KindReview:      capReview,
	KindPrism:       capPrism | capTraversal | capReview | capFold | capSetter,
	KindIsomorphism: capIso | capLens | capPrism | capGetter | capTraversal | capReview | capFold | capSetter,
	KindEquality:    capEquality | capIso | capLens | capPrism | capGetter | capTraversal | capReview | capFold | capSetter,
}

// kindOrder lists tags from most to least specific, the order in which a
// capability set resolves to its tag.
var kindOrder = [...]Kind{
	KindEquality,
	KindIsomorphism,
	KindPrism,
	KindReview,
	KindLens,
	KindTraversal,
	KindGetter,
	KindSetter,
	KindFold,
}

// Satisfies reports whether kind k carries every capability of required.
func (k Kind) Satisfies(required Kind) bool {
	if k == KindInvalid || required == KindInvalid {
		return false
	}
	req := kindCaps[required]
	return kindCaps[k]&req == req
}

// Meet returns the greatest lower bound of two kinds in the capability
// lattice: the most specific tag both subsume. KindInvalid when no shared
// capability remains.
func Meet(a, b Kind) Kind {
	inter := kindCaps[a] & kindCaps[b]
	for _, k := range kindOrder {
		if kindCaps[k]&inter == kindCaps[k] {
			return k
		}
	}
	return KindInvalid
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindFold:
		return "Fold"
	case KindSetter:
		return "Setter"
	case KindGetter:
		return "Getter"
	case KindTraversal:
		return "Traversal"
	case KindLens:
		return "Lens"
	case KindReview:
		return "Review"
	case KindPrism:
		return "Prism"
	case KindIsomorphism:
		return "Isomorphism"
	case KindEquality:
		return "Equality"
	default:
		return "Invalid"
	}
}
