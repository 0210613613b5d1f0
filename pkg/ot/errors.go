package ot

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned by Apply when op.BaseLen() exceeds the
// document's codepoint count. Compose and Transform do not return it:
// a.TargetLen()/b.BaseLen() (Compose) and a.BaseLen()/b.BaseLen()
// (Transform) need not match exactly, since either operand's trailing
// Skip may have been trimmed by Normalize — the virtual infinite-skip
// tail (spec §4.2/§9) absorbs the difference instead of erroring.
var ErrLengthMismatch = errors.New("ot: length mismatch")

// PreconditionError reports a violated precondition in the component
// algebra itself, as distinct from a length mismatch across a call
// boundary. Component.Split panics with one when asked to split at an
// offset below 1 or on an unknown Kind; the Skip and Delete constructors
// do not check for negative lengths and never produce one. Per spec
// §7 these indicate a caller bug and are not meant to be recovered from;
// the error exists so the offending value is visible to whoever panics/
// logs it rather than being squashed into a generic message.
type PreconditionError struct {
	Op     string // the operation that was attempted, e.g. "Component.Split"
	Detail string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("ot: precondition violated in %s: %s", e.Op, e.Detail)
}
