package strength_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/5w1tchy/password-checker/internal/strength"
)

func TestEntropy(t *testing.T) {
	assert.Zero(t, strength.Entropy(""))
	assert.Zero(t, strength.Entropy("€€€"))
	assert.InDelta(t, 8*math.Log2(26), strength.Entropy("abcdefgh"), 1e-9)
	assert.InDelta(t, 4*math.Log2(94), strength.Entropy("aB3!"), 1e-9)
	assert.InDelta(t, 2*math.Log2(32), strength.Entropy(`"<`), 1e-9)
}

func TestEntropy_MonotonicInLength(t *testing.T) {
	prev := 0.0
	for n := 1; n <= 32; n++ {
		e := strength.Entropy(strings.Repeat("aB3!", n))
		assert.Greater(t, e, prev)
		prev = e
	}
}

func TestCharacterClass(t *testing.T) {
	assert.True(t, strength.Lowercase.Contains('q'))
	assert.False(t, strength.Lowercase.Contains('Q'))
	assert.True(t, strength.Uppercase.Contains('Q'))
	assert.True(t, strength.Digit.Contains('7'))
	assert.False(t, strength.Digit.Contains('٣'))
	for _, r := range strength.Specials {
		assert.True(t, strength.Special.Contains(r), string(r))
	}
	assert.False(t, strength.Special.Contains('-'))
	assert.False(t, strength.Special.Contains('_'))

	sizes := 0
	for _, c := range strength.Classes {
		sizes += c.Size()
	}
	assert.Equal(t, 94, sizes)
	assert.Equal(t, "special", strength.Special.String())
}
