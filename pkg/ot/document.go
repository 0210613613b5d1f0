package ot

// Document is the editable text collaborator Apply consumes. It is the
// only interface the core depends on — any mutable text container that
// can insert and delete at a codepoint offset can stand in for it. The
// core never reaches into a Document's storage representation.
type Document interface {
	// InsertAt inserts s at codepoint offset pos.
	InsertAt(pos int, s string)

	// RemoveAt removes n codepoints starting at codepoint offset pos.
	RemoveAt(pos int, n int)

	// Len returns the document's length in codepoints.
	Len() int

	// String returns the document's current content.
	String() string
}

// StringDocument is the default Document implementation: a mutable
// UTF-8 string. Codepoint offsets are converted to byte offsets on each
// call, then spliced — simple and correct, not optimized for large
// documents (spec §1 explicitly leaves efficient rope/skiplist backends
// out of scope; this is the reference implementation the interface is
// specified against).
type StringDocument struct {
	content string
}

// NewStringDocument returns a StringDocument initialized with content.
func NewStringDocument(content string) *StringDocument {
	return &StringDocument{content: content}
}

// Len returns the codepoint count of the document.
func (d *StringDocument) Len() int {
	return codepointCount(d.content)
}

// String returns the document's current content.
func (d *StringDocument) String() string {
	return d.content
}

// InsertAt inserts s at codepoint offset pos.
func (d *StringDocument) InsertAt(pos int, s string) {
	b := byteOffset(d.content, pos)
	d.content = d.content[:b] + s + d.content[b:]
}

// RemoveAt removes n codepoints starting at codepoint offset pos.
func (d *StringDocument) RemoveAt(pos int, n int) {
	start := byteOffset(d.content, pos)
	end := byteOffset(d.content[start:], n) + start
	d.content = d.content[:start] + d.content[end:]
}

// byteOffset returns the byte offset of the n-th codepoint in s (or
// len(s) if s has fewer than n codepoints — callers are expected to have
// already checked bounds per spec §7, but byteOffset itself does not
// panic on a short string).
func byteOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
