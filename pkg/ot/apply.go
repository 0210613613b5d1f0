package ot

// Apply applies op to doc in place, walking op left to right and
// advancing a codepoint cursor: Skip advances it, Delete removes at it
// without advancing, Insert writes at it and advances past the inserted
// text.
//
// Apply assumes op is well-formed for doc (invariant I2: the sum of
// op's skip and delete lengths is at most doc's codepoint count). A
// Skip or Delete that runs past the end of doc is a programmer/data
// error per spec §7 and is reported as ErrLengthMismatch rather than
// attempted partially.
func Apply(doc Document, op Operation) error {
	if op.BaseLen() > doc.Len() {
		return ErrLengthMismatch
	}

	pos := 0
	for _, c := range op {
		switch c.Kind {
		case KindSkip:
			pos += c.N
		case KindDelete:
			doc.RemoveAt(pos, c.N)
		case KindInsert:
			doc.InsertAt(pos, c.Text)
			pos += c.Len()
		}
	}
	return nil
}

// ApplyToString is a convenience wrapper around Apply for the common case
// of a plain string document; it returns the transformed string without
// requiring the caller to construct a StringDocument.
func ApplyToString(s string, op Operation) (string, error) {
	doc := NewStringDocument(s)
	if err := Apply(doc, op); err != nil {
		return "", err
	}
	return doc.String(), nil
}
