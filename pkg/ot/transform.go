package ot

// Transform rebases a across the concurrent operation b, producing a' so
// that applying a' after b converges with applying b' (= Transform(b, a,
// the opposite Side)) after a — invariant I4, the TP1 property.
//
// a and b both describe edits to the same base document, so their
// BaseLen need not match exactly: either one may be shorter because its
// trailing Skip was trimmed by Normalize (spec §4.2/§9's virtual
// infinite-skip tail), and a shorter declared length is simply read as
// "nothing more to say past this point, the rest is untouched" for
// whichever side ran out first. The walk below drives off b's explicit
// components while pulling from an OpIter over a, which synthesizes a
// virtual trailing Skip once a is exhausted; the final TakeWhole drain
// loop carries through whatever of a is left once b is exhausted.
// There is no length relationship left to reject here — unlike Compose,
// neither side is privileged as "the" document length.
//
// side breaks ties when a and b both insert at the same position: under
// SideLeft, a's insert comes first in the rebased result; under
// SideRight, it comes after b's.
//
// Transform walks b, drawing from an OpIter over a via TakeIns — which
// hands back a's Insert components indivisibly, because a local insert
// must come out intact regardless of what the concurrent operation b is
// doing at that position.
func Transform(a, b Operation, side Side) (Operation, error) {
	result := make(Operation, 0, len(a)+len(b))
	ai := NewOpIter(a)

	for _, bc := range b {
		switch bc.Kind {
		case KindSkip:
			length := bc.N
			for length > 0 {
				chunk := ai.TakeIns(length)
				result = Append(result, chunk)
				if chunk.Kind != KindInsert {
					length -= chunk.Len()
				}
			}

		case KindInsert:
			if side == SideLeft {
				if peek, ok := ai.Peek(); ok && peek.IsInsert() {
					whole, _ := ai.TakeWhole()
					result = Append(result, whole)
				}
			}
			result = Append(result, Skip(codepointCount(bc.Text)))

		case KindDelete:
			length := bc.N
			for length > 0 {
				chunk := ai.TakeIns(length)
				switch chunk.Kind {
				case KindSkip:
					// a's skip over now-deleted characters is moot.
					length -= chunk.N
				case KindInsert:
					// local inserts survive at their shifted position.
					result = Append(result, chunk)
				case KindDelete:
					// a wanted to delete what b already deleted.
					length -= chunk.N
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
