package ot

import "github.com/sergi/go-diff/diffmatchpatch"

// FromDiff builds an Operation from the Myers diff between before and
// after, the same way an editor without access to the original edit
// event (e.g. one reconstructing history from two snapshots) produces an
// operation to feed into Compose/Transform. It is grounded on the
// teacher's own use of diffmatchpatch in its patch manager, repurposed
// here to emit Skip/Insert/Delete components instead of a text patch.
func FromDiff(before, after string) Operation {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	op := make(Operation, 0, len(diffs))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = Append(op, Skip(codepointCount(d.Text)))
		case diffmatchpatch.DiffDelete:
			op = Append(op, Delete(codepointCount(d.Text)))
		case diffmatchpatch.DiffInsert:
			op = Append(op, Insert(d.Text))
		}
	}
	return trimTrailingSkip(op)
}
