// Package strength scores passwords with a length/variety heuristic and
// produces short advice for improving them.
package strength

const (
	MaxScore = 7

	// EntropyBonusBits is the estimate above which one bonus point is awarded.
	EntropyBonusBits = 60.0

	// repeatRatio is the minimum distinct/length ratio before the repetition penalty.
	repeatRatio = 0.6

	// seqWindow is how many leading characters the sequential check inspects.
	seqWindow = 4
)

const (
	StrengthNone   = "No Password"
	StrengthWeak   = "Weak"
	StrengthFair   = "Fair"
	StrengthGood   = "Good"
	StrengthStrong = "Strong"
)

const (
	ColorRed    = "red"
	ColorOrange = "orange"
	ColorYellow = "yellow"
	ColorGreen  = "green"
)

const (
	MsgEmpty       = "Please enter a password"
	MsgTooShort    = "Use at least 8 characters"
	MsgLonger      = "Consider using 12+ characters for better security"
	MsgCommon      = "Avoid common passwords"
	MsgRepeated    = "Reduce repeated characters"
	MsgSequential  = "Avoid sequential characters (abc, 123)"
	MsgLooksSecure = "Great! Your password looks secure."
)

// Result is the outcome of a single evaluation.
type Result struct {
	Score    int      `json:"score"`    // 0..7
	Strength string   `json:"strength"` // No Password, Weak, Fair, Good, Strong
	Feedback []string `json:"feedback"`
	Color    string   `json:"color"`
	Entropy  float64  `json:"entropy"` // bits, one decimal
	Length   int      `json:"length"`  // code points
}

// Evaluate scores pwd. It never fails; the empty string yields the No Password result.
func Evaluate(pwd string) Result {
	if pwd == "" {
		return Result{
			Score:    0,
			Strength: StrengthNone,
			Feedback: []string{MsgEmpty},
			Color:    ColorRed,
		}
	}

	runes := []rune(pwd)
	n := len(runes)
	score := 0
	var feedback []string

	switch {
	case n < 8:
		feedback = append(feedback, MsgTooShort)
	case n < 12:
		score++
		feedback = append(feedback, MsgLonger)
	default:
		score += 2
	}

	set := classesOf(pwd)
	for _, c := range Classes {
		if set.has(c) {
			score++
		} else {
			feedback = append(feedback, c.missingHint())
		}
	}

	// penalties clamp at zero as they are applied
	if IsCommon(pwd) {
		score = max(0, score-3)
		feedback = append(feedback, MsgCommon)
	}

	if float64(distinct(runes)) < float64(n)*repeatRatio {
		score = max(0, score-1)
		feedback = append(feedback, MsgRepeated)
	}

	if hasLeadingSequence(runes) {
		score = max(0, score-1)
		feedback = append(feedback, MsgSequential)
	}

	entropy := entropyOf(n, set)
	if entropy > EntropyBonusBits {
		score++
	}
	score = min(score, MaxScore)

	strength, color := Label(score)
	if len(feedback) == 0 {
		feedback = []string{MsgLooksSecure}
	}

	return Result{
		Score:    score,
		Strength: strength,
		Feedback: feedback,
		Color:    color,
		Entropy:  round1(entropy),
		Length:   n,
	}
}

// Label maps a score to its strength label and display color.
func Label(score int) (strength, color string) {
	switch {
	case score <= 2:
		return StrengthWeak, ColorRed
	case score <= 4:
		return StrengthFair, ColorOrange
	case score <= 6:
		return StrengthGood, ColorYellow
	default:
		return StrengthStrong, ColorGreen
	}
}

func distinct(runes []rune) int {
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// hasLeadingSequence reports whether any adjacent pair within the first
// seqWindow characters ascends by exactly one code point.
func hasLeadingSequence(runes []rune) bool {
	end := min(len(runes), seqWindow)
	for i := 1; i < end; i++ {
		if runes[i] == runes[i-1]+1 {
			return true
		}
	}
	return false
}
