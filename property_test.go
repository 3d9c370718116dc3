// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/optics"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randInts returns a random slice of length [0, 8].
func randInts(rng *rand.Rand) []int {
	xs := make([]int, rng.IntN(9))
	for i := range xs {
		xs[i] = randInt(rng)
	}
	return xs
}

// --- Group 1: Lens Laws ---

// TestPropertyLensGetSet: Set(l, s, View(l, s)) ≡ s
func TestPropertyLensGetSet(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	second := secondLens()
	for range propertyN {
		s := randInts(rng)
		if len(s) < 2 {
			continue
		}
		v, err := optics.View[int](second, s)
		if err != nil {
			t.Fatal(err)
		}
		got, err := optics.Set(second, s, v)
		if err != nil {
			t.Fatal(err)
		}
		if !intsEqual(got, s) {
			t.Fatalf("get-set: %v != %v", got, s)
		}
	}
}

// TestPropertyLensSetGet: View(l, Set(l, s, v)) ≡ v
func TestPropertyLensSetGet(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	second := secondLens()
	for range propertyN {
		s := randInts(rng)
		if len(s) < 2 {
			continue
		}
		v := randInt(rng)
		set, err := optics.Set(second, s, v)
		if err != nil {
			t.Fatal(err)
		}
		got, err := optics.View[int](second, set)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Fatalf("set-get: %d != %d", got, v)
		}
	}
}

// --- Group 2: Composition Laws ---

// TestPropertyComposeIdentity: Compose(Identity(), o) behaves as o.
func TestPropertyComposeIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	each := optics.Each[int]()
	padded, err := optics.Compose(optics.Identity(), each, optics.Identity())
	if err != nil {
		t.Fatal(err)
	}
	if padded.Kind() != each.Kind() {
		t.Fatalf("identity padding changed kind: %v", padded.Kind())
	}
	for range propertyN {
		s := randInts(rng)
		want, err := optics.Over(each, s, negate)
		if err != nil {
			t.Fatal(err)
		}
		got, err := optics.Over(padded, s, negate)
		if err != nil {
			t.Fatal(err)
		}
		if !intsEqual(got, want) {
			t.Fatalf("identity: %v != %v (s=%v)", got, want, s)
		}
	}
}

// TestPropertyComposeAssociativity: Compose(Compose(a, b), c) ≡ Compose(a, Compose(b, c))
func TestPropertyComposeAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	a := optics.Each[[]int]()
	b := optics.Each[int]()
	c := optics.Filtered[int](func(n int) bool { return n%2 == 0 })

	ab, err := optics.Compose(a, b)
	if err != nil {
		t.Fatal(err)
	}
	left, err := optics.Compose(ab, c)
	if err != nil {
		t.Fatal(err)
	}
	bc, err := optics.Compose(b, c)
	if err != nil {
		t.Fatal(err)
	}
	right, err := optics.Compose(a, bc)
	if err != nil {
		t.Fatal(err)
	}
	if left.Kind() != right.Kind() {
		t.Fatalf("associativity kinds: %v != %v", left.Kind(), right.Kind())
	}

	for range propertyN {
		s := [][]int{randInts(rng), randInts(rng)}
		lv, err := optics.ToListOf[int](left, s)
		if err != nil {
			t.Fatal(err)
		}
		rv, err := optics.ToListOf[int](right, s)
		if err != nil {
			t.Fatal(err)
		}
		if !intsEqual(lv, rv) {
			t.Fatalf("associativity foci: %v != %v (s=%v)", lv, rv, s)
		}
		ls, err := optics.Over(left, s, negate)
		if err != nil {
			t.Fatal(err)
		}
		rs, err := optics.Over(right, s, negate)
		if err != nil {
			t.Fatal(err)
		}
		for i := range ls {
			if !intsEqual(ls[i], rs[i]) {
				t.Fatalf("associativity rebuild: %v != %v (s=%v)", ls, rs, s)
			}
		}
	}
}

// TestPropertyComposedKindNeverGains: a composite's kind satisfies no
// capability that either part lacks.
func TestPropertyComposedKindNeverGains(t *testing.T) {
	kinds := []optics.Kind{
		optics.KindFold, optics.KindSetter, optics.KindGetter,
		optics.KindTraversal, optics.KindLens, optics.KindReview,
		optics.KindPrism, optics.KindIsomorphism, optics.KindEquality,
	}
	for _, ka := range kinds {
		for _, kb := range kinds {
			composite, err := optics.Compose(
				optics.Custom(ka, passThrough),
				optics.Custom(kb, passThrough),
			)
			want := optics.Meet(ka, kb)
			if want == optics.KindInvalid {
				if err == nil {
					t.Fatalf("%v∘%v: expected structural error", ka, kb)
				}
				continue
			}
			if err != nil {
				t.Fatalf("%v∘%v: %v", ka, kb, err)
			}
			got := composite.Kind()
			if got != want {
				t.Fatalf("%v∘%v: kind %v, want %v", ka, kb, got, want)
			}
			for _, k := range kinds {
				if got.Satisfies(k) && !(ka.Satisfies(k) && kb.Satisfies(k)) {
					t.Fatalf("%v∘%v gained %v", ka, kb, k)
				}
			}
		}
	}
}

// --- Group 3: Isomorphism Laws ---

// TestPropertyFlipInvolution: Flip(Flip(iso)) behaves as iso.
func TestPropertyFlipInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	iso := negateIso()
	flipped, err := optics.Flip(iso)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := optics.Flip(flipped)
	if err != nil {
		t.Fatal(err)
	}
	for range propertyN {
		n := randInt(rng)
		want, err := optics.View[int](iso, n)
		if err != nil {
			t.Fatal(err)
		}
		got, err := optics.View[int](twice, n)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("flip involution view: %d != %d (n=%d)", got, want, n)
		}
	}
}

// TestPropertyIsoRoundTrip: viewing through an iso and through its flip
// are mutually inverse.
func TestPropertyIsoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	iso := negateIso()
	flipped, err := optics.Flip(iso)
	if err != nil {
		t.Fatal(err)
	}
	for range propertyN {
		n := randInt(rng)
		there, err := optics.View[int](iso, n)
		if err != nil {
			t.Fatal(err)
		}
		back, err := optics.View[int](flipped, there)
		if err != nil {
			t.Fatal(err)
		}
		if back != n {
			t.Fatalf("round trip: %d != %d", back, n)
		}
	}
}

// --- Group 4: Prism Laws ---

// TestPropertyPrismConstructMatch: unpack(pack(a)) focuses a.
func TestPropertyPrismConstructMatch(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	prism := parseIntPrism()
	for range propertyN {
		n := randInt(rng)
		s, err := optics.Construct[string](prism, n)
		if err != nil {
			t.Fatal(err)
		}
		got, err := optics.View[int](prism, s)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Fatalf("construct-match: %d != %d (s=%q)", got, n, s)
		}
	}
}

func negate(n int) int { return -n }

func passThrough(f optics.Functorisor, state optics.Erased) (optics.Wrapped, error) {
	return f.Call(state)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
