package ot

import (
	"strconv"
	"strings"
)

// Operation is an ordered sequence of Components describing a positional
// edit to a document. Operations returned by this package are always
// normalized (see Normalize): no empty component, no two adjacent
// components of the same Kind, no trailing Skip.
//
// Operation is a plain slice type, not a struct wrapping cached lengths —
// BaseLen/TargetLen are derived on read so that Normalize's trim step can
// never leave stale cached totals behind.
type Operation []Component

// BaseLen returns the number of codepoints this operation expects to find
// in the document it is applied to (the sum of its Skip and Delete
// lengths). Per invariant I2 this is a lower bound, not an exact
// requirement — a shorter trailing Skip is implicit.
func (op Operation) BaseLen() int {
	n := 0
	for _, c := range op {
		if c.Kind == KindSkip || c.Kind == KindDelete {
			n += c.N
		}
	}
	return n
}

// TargetLen returns the codepoint length of the document that results
// from applying this operation to a document of exactly BaseLen
// codepoints.
func (op Operation) TargetLen() int {
	n := 0
	for _, c := range op {
		if c.Kind == KindSkip {
			n += c.N
		} else if c.Kind == KindInsert {
			n += c.Len()
		}
	}
	return n
}

// IsNoop reports whether op has no effect on any document: either it is
// empty, or it is a single Skip (which, per the trailing-skip trim rule,
// can only happen on an un-normalized operation — Normalize would drop it
// to empty).
func (op Operation) IsNoop() bool {
	if len(op) == 0 {
		return true
	}
	return len(op) == 1 && op[0].IsSkip()
}

// Equals reports whether op and other contain the same components in the
// same order.
func (op Operation) Equals(other Operation) bool {
	if len(op) != len(other) {
		return false
	}
	for i := range op {
		if op[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders op for debugging as a comma-separated list of its
// components, e.g. `skip 5, insert "hi", delete 3`.
func (op Operation) String() string {
	parts := make([]string, len(op))
	for i, c := range op {
		switch c.Kind {
		case KindSkip:
			parts[i] = "skip " + strconv.Itoa(c.N)
		case KindDelete:
			parts[i] = "delete " + strconv.Itoa(c.N)
		case KindInsert:
			parts[i] = "insert " + strconv.Quote(c.Text)
		}
	}
	return strings.Join(parts, ", ")
}

// Append is the single low-level primitive that grows an operation while
// maintaining the normalization invariants incrementally: it merges c
// into the last component of op when they share a Kind, drops c entirely
// if it is empty, and otherwise appends it. Append does not trim a
// trailing Skip — that only happens once, in Normalize, after the whole
// sequence is known.
//
// Append may reuse op's backing array (as the builtin append does);
// callers that need to keep the pre-Append slice around should copy it
// first.
func Append(op Operation, c Component) Operation {
	if c.Empty() {
		return op
	}
	if len(op) == 0 {
		return append(op, c)
	}

	last := op[len(op)-1]
	if last.Kind == c.Kind {
		switch c.Kind {
		case KindSkip:
			op[len(op)-1] = Skip(last.N + c.N)
			return op
		case KindDelete:
			op[len(op)-1] = Delete(last.N + c.N)
			return op
		case KindInsert:
			op[len(op)-1] = Insert(last.Text + c.Text)
			return op
		}
	}
	return append(op, c)
}

// Normalize folds Append over op's components and trims any trailing
// Skip, producing a fresh, independent Operation. A trailing Delete is
// never trimmed — it is semantically meaningful (spec's design notes
// resolve this ambiguity explicitly; the alternative "trim any non-Insert
// tail" rule seen in some historical ports is not used here).
func Normalize(op Operation) Operation {
	result := make(Operation, 0, len(op))
	for _, c := range op {
		result = Append(result, c)
	}
	return trimTrailingSkip(result)
}

func trimTrailingSkip(op Operation) Operation {
	for len(op) > 0 && op[len(op)-1].IsSkip() {
		op = op[:len(op)-1]
	}
	return op
}

// Builder accumulates raw components with a fluent API and normalizes
// them on Build. It exists for ergonomic construction in tests and
// example code — Compose and Transform build their result operations
// directly via Append, not through Builder.
type Builder struct {
	components Operation
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{components: make(Operation, 0, 8)}
}

// Skip appends a skip of n codepoints.
func (b *Builder) Skip(n int) *Builder {
	b.components = Append(b.components, Skip(n))
	return b
}

// Delete appends a delete of n codepoints.
func (b *Builder) Delete(n int) *Builder {
	b.components = Append(b.components, Delete(n))
	return b
}

// Insert appends an insert component carrying s.
func (b *Builder) Insert(s string) *Builder {
	b.components = Append(b.components, Insert(s))
	return b
}

// Build returns the normalized Operation accumulated so far.
func (b *Builder) Build() Operation {
	return trimTrailingSkip(b.components)
}
