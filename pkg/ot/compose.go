package ot

// Compose produces an operation c such that applying c to a document
// equals applying a followed by b (invariant I3: Apply(Apply(d, a), b)
// == Apply(d, Compose(a, b))). a.TargetLen() and b.BaseLen() both
// describe the same intermediate document, but need not match exactly:
// either one may be the shorter, trailing-Skip-trimmed form (spec
// §4.2/§9's virtual infinite-skip tail) — a trimmed trailing Skip on
// either side just means "everything past here carries through
// unchanged", and Skip content is identical whether it's counted toward
// BaseLen or TargetLen. If b runs out first, the leftover of a is
// carried through untouched by the final TakeWhole drain loop below; if
// a runs out first, the OpIter over a synthesizes a virtual trailing
// Skip for whatever of b remains, which is exactly the untouched tail a
// would have declared had it not been trimmed. There is no length
// relationship left to reject here.
//
// Compose walks b component by component, drawing from an OpIter over a
// via TakeDel — which hands back a's Delete components indivisibly,
// because a delete a made must survive in the composed result regardless
// of what b does; b never gets to see characters a already removed.
func Compose(a, b Operation) (Operation, error) {
	result := make(Operation, 0, len(a)+len(b))
	ai := NewOpIter(a)

	for _, bc := range b {
		switch bc.Kind {
		case KindSkip:
			length := bc.N
			for length > 0 {
				chunk := ai.TakeDel(length)
				result = Append(result, chunk)
				if chunk.Kind != KindDelete {
					length -= chunk.Len()
				}
			}

		case KindInsert:
			// b inserts content a never saw; a's cursor is untouched.
			result = Append(result, bc)

		case KindDelete:
			length := bc.N
			for length > 0 {
				chunk := ai.TakeDel(length)
				switch chunk.Kind {
				case KindSkip:
					// untouched document content that b now deletes.
					result = Append(result, Delete(chunk.N))
					length -= chunk.N
				case KindInsert:
					// a inserted it, b deletes it: they cancel.
					length -= chunk.Len()
				case KindDelete:
					// a's delete survives; it didn't consume any of
					// b's intended length either.
					result = Append(result, chunk)
				}
			}
		}
	}

	for {
		c, ok := ai.TakeWhole()
		if !ok {
			break
		}
		result = Append(result, c)
	}

	return trimTrailingSkip(result), nil
}
