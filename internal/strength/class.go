package strength

import "strings"

// Specials is the symbol alphabet recognised by the scorer.
const Specials = `!@#$%^&*(),.?":{}|<>`

// CharacterClass is one of the character categories used for scoring and entropy.
type CharacterClass int

const (
	Lowercase CharacterClass = iota
	Uppercase
	Digit
	Special
)

// Classes lists every class in feedback order.
var Classes = [...]CharacterClass{Lowercase, Uppercase, Digit, Special}

func (c CharacterClass) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Size is the alphabet size the class contributes to the entropy estimate.
func (c CharacterClass) Size() int {
	switch c {
	case Lowercase, Uppercase:
		return 26
	case Digit:
		return 10
	case Special:
		return 32
	default:
		return 0
	}
}

// Contains reports whether r belongs to the class. ASCII only.
func (c CharacterClass) Contains(r rune) bool {
	switch c {
	case Lowercase:
		return r >= 'a' && r <= 'z'
	case Uppercase:
		return r >= 'A' && r <= 'Z'
	case Digit:
		return r >= '0' && r <= '9'
	case Special:
		return strings.ContainsRune(Specials, r)
	default:
		return false
	}
}

// missingHint is the advice emitted when a password lacks the class.
func (c CharacterClass) missingHint() string {
	switch c {
	case Lowercase:
		return "Add lowercase letters"
	case Uppercase:
		return "Add uppercase letters"
	case Digit:
		return "Add numbers"
	case Special:
		return "Add special characters (!@#$%^&*)"
	default:
		return ""
	}
}

// classSet records which classes appear in a password.
type classSet [len(Classes)]bool

func classesOf(pwd string) classSet {
	var set classSet
	for _, r := range pwd {
		for i, c := range Classes {
			if !set[i] && c.Contains(r) {
				set[i] = true
			}
		}
	}
	return set
}

func (s classSet) has(c CharacterClass) bool { return s[c] }
