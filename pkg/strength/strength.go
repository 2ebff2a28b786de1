package strength

import "math"

// Alphabet sizes added to the pool for each character class present.
// symbolPool covers common punctuation; it is an assumed size, not a count
// of the symbols actually used, so reported entropy is an approximation.
const (
	upperPool  = 26
	lowerPool  = 26
	digitPool  = 10
	symbolPool = 32
)

type Category int

const (
	VeryWeak Category = iota
	Weak
	Strong
	VeryStrong
)

func (c Category) String() string {
	switch c {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Strong:
		return "Strong"
	default:
		return "Very Strong"
	}
}

// Thresholds are the entropy cut points (in bits) between categories. They
// are a tunable policy, not part of the algorithm; values must be increasing.
type Thresholds struct {
	Weak       float64
	Strong     float64
	VeryStrong float64
}

var DefaultThresholds = Thresholds{Weak: 35, Strong: 60, VeryStrong: 120}

func (t Thresholds) Valid() bool {
	return t.Weak < t.Strong && t.Strong < t.VeryStrong
}

func (t Thresholds) Category(bits float64) Category {
	switch {
	case bits < t.Weak:
		return VeryWeak
	case bits < t.Strong:
		return Weak
	case bits < t.VeryStrong:
		return Strong
	default:
		return VeryStrong
	}
}

type Classes struct {
	Upper  bool
	Lower  bool
	Digit  bool
	Symbol bool
}

func (c Classes) Count() int {
	n := 0
	for _, present := range [4]bool{c.Upper, c.Lower, c.Digit, c.Symbol} {
		if present {
			n++
		}
	}
	return n
}

type Report struct {
	EntropyBits  float64
	Category     Category
	Suggestions  []string
	Warnings     []string
	Length       int
	PoolSize     int
	Classes      Classes
	PatternScore int
	CrackTime    string
}

// Evaluate computes a strength report with DefaultThresholds.
func Evaluate(password string) Report {
	return EvaluateWith(password, DefaultThresholds)
}

// EvaluateWith classifies the password's character composition, estimates
// entropy as length * log2(pool size), and maps it onto a category. Anything
// outside ASCII letters and digits counts as a symbol, non-ASCII letters
// included. Length is counted in runes.
func EvaluateWith(password string, t Thresholds) Report {
	var cl Classes
	length := 0

	for _, r := range password {
		length++
		switch {
		case r >= 'A' && r <= 'Z':
			cl.Upper = true
		case r >= 'a' && r <= 'z':
			cl.Lower = true
		case r >= '0' && r <= '9':
			cl.Digit = true
		default:
			cl.Symbol = true
		}
	}

	pool := 0
	if cl.Upper {
		pool += upperPool
	}
	if cl.Lower {
		pool += lowerPool
	}
	if cl.Digit {
		pool += digitPool
	}
	if cl.Symbol {
		pool += symbolPool
	}

	var entropy float64
	if length > 0 && pool > 0 {
		entropy = float64(length) * math.Log2(float64(pool))
	}

	score := patternScore(password)

	return Report{
		EntropyBits:  entropy,
		Category:     t.Category(entropy),
		Suggestions:  suggestions(cl),
		Warnings:     warnings(password, length, entropy, score, t),
		Length:       length,
		PoolSize:     pool,
		Classes:      cl,
		PatternScore: score,
		CrackTime:    crackTime(entropy),
	}
}

// suggestions lists a hint for every missing class, in fixed order.
func suggestions(cl Classes) []string {
	s := []string{}
	if !cl.Upper {
		s = append(s, "Add uppercase letters")
	}
	if !cl.Lower {
		s = append(s, "Add lowercase letters")
	}
	if !cl.Digit {
		s = append(s, "Add numbers")
	}
	if !cl.Symbol {
		s = append(s, "Add special characters")
	}
	return s
}
