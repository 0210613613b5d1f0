package ot

// OpIter is a one-directional cursor over an Operation's components,
// ported from original_source's `OpIter` (itself the reference design
// spec §4.2 names). It drives the two-operation walks in Compose and
// Transform.
//
// The zero value is not usable; construct with NewOpIter.
type OpIter struct {
	next Component // the component that would be returned next, if any
	ok   bool       // whether next holds a real component
	rest Operation  // components after next
}

// NewOpIter returns an iterator over op's components. op is not mutated;
// NewOpIter does not take ownership of its backing array, but the
// returned iterator never writes through it either.
func NewOpIter(op Operation) *OpIter {
	it := &OpIter{rest: op}
	it.populate()
	return it
}

func (it *OpIter) populate() {
	if !it.ok && len(it.rest) > 0 {
		it.next = it.rest[0]
		it.rest = it.rest[1:]
		it.ok = true
	}
}

// Peek returns the next component without consuming it.
func (it *OpIter) Peek() (Component, bool) {
	return it.next, it.ok
}

// TakeWhole consumes and returns the next component unchanged. On
// exhaustion it returns the zero Component and false — unlike TakeIns/
// TakeDel, TakeWhole does not synthesize a virtual trailing Skip.
func (it *OpIter) TakeWhole() (Component, bool) {
	if !it.ok {
		return Component{}, false
	}
	c := it.next
	it.ok = false
	it.populate()
	return c, true
}

// takeUpTo consumes the next component. If keepWhole(next) is true, next
// is returned unchanged regardless of k. Otherwise next is split at k
// codepoints: the head is returned and consumed, the tail becomes the new
// front of the iterator.
//
// When the iterator is exhausted, takeUpTo returns Skip(k) — the virtual
// infinite-skip tail (spec §4.2/§9): operations need not explicitly skip
// trailing document content, so a missing tail behaves as if extended
// with unbounded skips.
func (it *OpIter) takeUpTo(k int, keepWhole func(Component) bool) Component {
	if !it.ok {
		return Skip(k)
	}
	c := it.next
	if keepWhole(c) {
		it.ok = false
		it.populate()
		return c
	}
	head, tail, hasTail := c.Split(k)
	if hasTail {
		it.next = tail
		// it.ok stays true; next already holds the tail.
	} else {
		it.ok = false
		it.populate()
	}
	return head
}

// TakeIns takes the next component, splitting it at k codepoints unless
// it is an Insert, in which case it is returned whole. An insert in the
// operation being walked represents local content that must survive
// intact regardless of what the other operation does to the surrounding
// document — this indivisibility is what lets Transform emit a concurrent
// insert verbatim.
func (it *OpIter) TakeIns(k int) Component {
	return it.takeUpTo(k, Component.IsInsert)
}

// TakeDel takes the next component, splitting it at k codepoints unless
// it is a Delete, in which case it is returned whole. A delete in the
// operation being walked must survive intact regardless of what the other
// operation does — this is what lets Compose keep a first-operation
// delete that the second operation never gets to see.
func (it *OpIter) TakeDel(k int) Component {
	return it.takeUpTo(k, Component.IsDelete)
}
