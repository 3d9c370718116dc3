// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnappendable reports that View could not join two foci as a monoid.
// Wrap-checked with errors.Is.
var ErrUnappendable = errors.New("optics: cannot append foci")

// CapabilityError reports a public operation invoked on an optic whose
// kind lacks the required capability. It is raised before any evaluation
// begins — operations never partially execute on a capability mismatch.
type CapabilityError struct {
	Op       string // attempted operation
	Required Kind   // missing capability
	Have     Kind   // the optic's actual kind
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("optics: %s requires %s, optic kind is %s", e.Op, e.Required, e.Have)
}

// StructuralKindError reports a composition whose elements share no
// capability. Raised by [Compose] at construction time, never deferred to
// use time.
type StructuralKindError struct {
	Kinds []Kind // element kinds in composition order
}

func (e *StructuralKindError) Error() string {
	parts := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		parts[i] = k.String()
	}
	return fmt.Sprintf("optics: composed optic has no valid kind (%s)", strings.Join(parts, " & "))
}

// EmptyFocusError reports that View found zero foci for the given state
// despite Fold capability.
type EmptyFocusError struct{}

func (*EmptyFocusError) Error() string {
	return "optics: no focus to view"
}

// UnimplementedOpticError reports a default behavior invoked without being
// overridden. It indicates a bug in an optic variant, not caller error.
type UnimplementedOpticError struct {
	Op    string // the behavior that was invoked
	Optic string // the variant missing it
}

func (e *UnimplementedOpticError) Error() string {
	return fmt.Sprintf("optics: %s not implemented by %s", e.Op, e.Optic)
}
