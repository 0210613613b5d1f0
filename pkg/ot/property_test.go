package ot

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The generators below are deliberately seeded rather than drawing from
// the global math/rand source (as the teacher's ot.js-derived helpers
// do): every property test must be reproducible from a failure report
// without re-running anything, and a per-call rand.New keeps one test's
// random walk from perturbing another's.

func randomString(r *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if r.Float64() < 0.1 {
			b.WriteRune('é') // exercise multi-byte codepoints
		} else {
			b.WriteRune('a' + rune(r.Intn(26)))
		}
	}
	return b.String()
}

// randomOperation builds a random, already-normalized Operation whose
// components cover all len([]rune(base)) codepoints of base; Build trims
// a trailing Skip, so BaseLen can come out shorter — ported from the teacher's
// randomOperation (concordia/helpers_test.go), restated over this
// package's Skip/Delete/Insert builder instead of ot.js Retain semantics.
func randomOperation(r *rand.Rand, base string) Operation {
	baseLen := codepointCount(base)
	b := NewBuilder()

	consumed := 0
	for consumed < baseLen {
		left := baseLen - consumed
		maxLen := left
		if maxLen > 10 {
			maxLen = 10
		}
		l := 1 + r.Intn(maxLen)

		switch {
		case r.Float64() < 0.2:
			b.Insert(randomString(r, 1+r.Intn(5)))
		case r.Float64() < 0.4:
			b.Delete(l)
			consumed += l
		default:
			b.Skip(l)
			consumed += l
		}
	}

	if r.Float64() < 0.3 {
		b.Insert(randomString(r, 1+r.Intn(5)))
	}

	return b.Build()
}

const propertyIterations = 200

func TestProperty_P1_NormalizeIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < propertyIterations; i++ {
		doc := randomString(r, 30)
		op := randomOperation(r, doc)

		once := Normalize(op)
		twice := Normalize(once)
		assert.Equal(t, once, twice)
	}
}

func TestProperty_P2_NormalizeInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < propertyIterations; i++ {
		doc := randomString(r, 30)
		op := Normalize(randomOperation(r, doc))

		for j, c := range op {
			assert.False(t, c.Empty(), "component %d is empty", j)
			if j > 0 {
				assert.NotEqual(t, op[j-1].Kind, c.Kind, "adjacent components %d,%d share a kind", j-1, j)
			}
		}
		if len(op) > 0 {
			assert.False(t, op[len(op)-1].IsSkip(), "trailing component is a skip")
		}
	}
}

func TestProperty_P3_ComposeAgreesWithSequentialApply(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < propertyIterations; i++ {
		doc := randomString(r, 30)
		a := randomOperation(r, doc)

		afterA, err := ApplyToString(doc, a)
		require.NoError(t, err)

		b := randomOperation(r, afterA)
		sequential, err := ApplyToString(afterA, b)
		require.NoError(t, err)

		composed, err := Compose(a, b)
		require.NoError(t, err)
		fused, err := ApplyToString(doc, composed)
		require.NoError(t, err)

		assert.Equal(t, sequential, fused)
	}
}

func TestProperty_P4_TransformConverges(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < propertyIterations; i++ {
		doc := randomString(r, 30)
		a := randomOperation(r, doc)
		b := randomOperation(r, doc)

		aPrime, err := Transform(a, b, SideLeft)
		require.NoError(t, err)
		bPrime, err := Transform(b, a, SideRight)
		require.NoError(t, err)

		viaA, err := ApplyToString(doc, a)
		require.NoError(t, err)
		left, err := ApplyToString(viaA, bPrime)
		require.NoError(t, err)

		viaB, err := ApplyToString(doc, b)
		require.NoError(t, err)
		right, err := ApplyToString(viaB, aPrime)
		require.NoError(t, err)

		assert.Equal(t, left, right)
	}
}

// TestProperty_P5_EmptyOperationIdentities covers the literal-∅ edge
// cases from spec §4.6/§8: transform(a, ∅, _) == a, transform(∅, a, _)
// == ∅, compose(a, ∅) == a, and compose(∅, a) == a, for a random
// operation a of any length. Operation{} is a valid operand on either
// side regardless of a's own BaseLen/TargetLen — a's declared length and
// ∅'s (zero) are just two independent lower bounds on the same document,
// and the virtual infinite-skip tail in Compose/Transform (see their doc
// comments) absorbs the rest.
func TestProperty_P5_EmptyOperationIdentities(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < propertyIterations; i++ {
		doc := randomString(r, 20)
		a := randomOperation(r, doc)

		transformedAgainstEmpty, err := Transform(a, Operation{}, SideLeft)
		require.NoError(t, err)
		assert.Equal(t, Normalize(a), transformedAgainstEmpty)

		emptyTransformed, err := Transform(Operation{}, a, SideRight)
		require.NoError(t, err)
		assert.Equal(t, Operation{}, emptyTransformed)

		composedWithEmpty, err := Compose(a, Operation{})
		require.NoError(t, err)
		assert.Equal(t, Normalize(a), composedWithEmpty)

		composedFromEmpty, err := Compose(Operation{}, a)
		require.NoError(t, err)
		assert.Equal(t, Normalize(a), composedFromEmpty)
	}
}

func TestProperty_P6_CodepointAccountingThroughNormalizeAndCompose(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < propertyIterations; i++ {
		doc := randomString(r, 30)
		a := randomOperation(r, doc)

		skippedAndDeleted := func(op Operation) int {
			n := 0
			for _, c := range op {
				if c.IsSkip() || c.IsDelete() {
					n += c.N
				}
			}
			return n
		}

		before := skippedAndDeleted(a)
		after := skippedAndDeleted(Normalize(a))
		assert.Equal(t, before, after)

		afterA, err := ApplyToString(doc, a)
		require.NoError(t, err)
		b := randomOperation(r, afterA)

		composed, err := Compose(a, b)
		require.NoError(t, err)
		// a, b and the composed result may each have had a trailing Skip
		// trimmed, which lowers BaseLen and TargetLen by the same amount;
		// what carries through exactly is the net length change, and the
		// composed operation never reaches past a's base document.
		assert.Equal(t, (a.TargetLen()-a.BaseLen())+(b.TargetLen()-b.BaseLen()), composed.TargetLen()-composed.BaseLen())
		assert.LessOrEqual(t, composed.BaseLen(), codepointCount(doc))
	}
}
