package strength

import (
	"math"
	"unicode/utf8"
)

// Entropy estimates the search space in bits: length * log2(sum of alphabet
// sizes of the classes present). Zero when no class is present.
func Entropy(pwd string) float64 {
	return entropyOf(utf8.RuneCountInString(pwd), classesOf(pwd))
}

func entropyOf(length int, set classSet) float64 {
	space := 0
	for _, c := range Classes {
		if set.has(c) {
			space += c.Size()
		}
	}
	if space == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(space))
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
