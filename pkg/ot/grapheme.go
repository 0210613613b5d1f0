package ot

import "github.com/clipperhouse/uax29/graphemes"

// SafeSplitOffset returns the codepoint offset nearest to, and no greater
// than, k that falls on a grapheme cluster boundary in s. It is an
// advisory helper for callers constructing Insert components — an editor
// wiring keystrokes into Component.Split should snap to a grapheme
// boundary first, so it never asks the core to split a combining
// character sequence or an emoji ZWJ cluster in half.
//
// The core's own Component.Split contract stays codepoint-exact per spec
// §3/§9 — SafeSplitOffset does not change what Split does, it only helps
// pick a k that Split was going to handle safely anyway from the
// perspective of what a user perceives as "one character".
func SafeSplitOffset(s string, k int) int {
	if k <= 0 {
		return 0
	}

	boundary := 0
	for _, seg := range graphemes.SegmentAllString(s) {
		next := boundary + codepointCount(seg)
		if next > k {
			return boundary
		}
		boundary = next
		if boundary == k {
			return boundary
		}
	}
	return boundary
}

// IsGraphemeBoundary reports whether codepoint offset k in s falls
// exactly on a grapheme cluster boundary.
func IsGraphemeBoundary(s string, k int) bool {
	return SafeSplitOffset(s, k) == k
}
