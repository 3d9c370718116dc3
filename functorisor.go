// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// ApplyFunc is the uncurried van Laarhoven form shared by every optic:
// given the mode dispatcher f turning focus -> Wrapped focus, produce
// state -> Wrapped state.
type ApplyFunc func(f Functorisor, state Erased) (Wrapped, error)

// Functorisor packages the extraction and transformation behaviors of one
// evaluation mode behind a single call signature, so leaf optics never
// branch on mode. Call transforms-and-wraps a focus; Pure wraps a value
// unchanged, the short-circuit used by optics with no focus to offer
// (a failed Prism unpack, an empty traversal).
type Functorisor struct {
	pure func(Erased) Wrapped
	call func(Erased) (Wrapped, error)
}

// NewFunctorisor builds a mode dispatcher from its two behaviors.
// The public operations construct one per call; leaf optics only consume
// them.
func NewFunctorisor(pure func(Erased) Wrapped, call func(Erased) (Wrapped, error)) Functorisor {
	return Functorisor{pure: pure, call: call}
}

// Call applies the mode's transformation behavior to a focus.
func (f Functorisor) Call(v Erased) (Wrapped, error) {
	return f.call(v)
}

// Pure wraps a value without transforming it. In extraction mode the
// argument is discarded and the accumulation identity is produced; in
// transformation mode the value passes through untouched.
func (f Functorisor) Pure(v Erased) Wrapped {
	return f.pure(v)
}

// Then produces the combined dispatcher for the pipeline stage outside
// this one: the result keeps the same Pure behavior and routes Call
// through next with the current dispatcher as its inner mapping. Folding
// Then right-to-left over a composition chain yields one dispatcher that
// is invoked once on the outer state.
func (f Functorisor) Then(next ApplyFunc) Functorisor {
	return Functorisor{
		pure: f.pure,
		call: func(state Erased) (Wrapped, error) { return next(f, state) },
	}
}
