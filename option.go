// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

// Option represents a value that is either present (Some) or absent (None).
// It reports the outcome of a [Prism]'s partial extraction: absence of a
// focus for a particular state is first-class data handled as a
// pass-through, never an error and never a capability failure.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present Option.
func Some[A any](v A) Option[A] {
	return Option[A]{present: true, value: v}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether a value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone reports whether the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// Unwrap returns the contained value, or the zero value when absent.
func (o Option[A]) Unwrap() A {
	return o.value
}

// GetOrElse returns the contained value, or fallback when absent.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to a present value.
func MapOption[A, B any](o Option[A], fn func(A) B) Option[B] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two partial extractions.
func FlatMapOption[A, B any](o Option[A], fn func(A) Option[B]) Option[B] {
	if o.present {
		return fn(o.value)
	}
	return None[B]()
}
