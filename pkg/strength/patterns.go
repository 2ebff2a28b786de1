package strength

import (
	"strings"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// Keyboard walks and words that show up constantly in breached passwords.
var weakWords = []string{"qwerty", "asdf", "zxcv", "password", "admin", "login", "welcome"}

// patternScore is zxcvbn's dictionary/pattern-aware 0..4 score. It catches
// what the pool formula cannot: real words, leetspeak, dates, keyboard walks.
func patternScore(password string) int {
	if password == "" {
		return 0
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}

func warnings(password string, length int, entropy float64, score int, t Thresholds) []string {
	w := []string{}

	if length == 0 {
		return w
	}
	if length < 8 {
		w = append(w, "Use at least 8 characters (12+ recommended)")
	} else if length < 12 {
		w = append(w, "Consider using 12+ characters for better security")
	}

	if hasRepeatedRun(password) {
		w = append(w, "Contains repeated characters")
	}
	if hasSequentialRun(password) {
		w = append(w, "Contains sequential characters")
	}
	if containsWeakWord(password) {
		w = append(w, "Contains common words or keyboard patterns")
	}

	// Big pool and decent length, yet zxcvbn sees it as guessable.
	if score <= 1 && entropy >= t.Strong {
		w = append(w, "Predictable despite its length; built from guessable parts")
	}

	return w
}

// hasRepeatedRun reports three or more of the same rune in a row.
func hasRepeatedRun(password string) bool {
	var prev rune
	run := 0
	for _, r := range password {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// hasSequentialRun reports three or more consecutive ascending letters or
// digits (abc, 123), case-insensitive.
func hasSequentialRun(password string) bool {
	runes := []rune(strings.ToLower(password))
	run := 1
	for i := 1; i < len(runes); i++ {
		sequential := runes[i] == runes[i-1]+1 &&
			(isLowerLetter(runes[i]) && isLowerLetter(runes[i-1]) ||
				isDigit(runes[i]) && isDigit(runes[i-1]))
		if sequential {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func containsWeakWord(password string) bool {
	lower := strings.ToLower(password)
	for _, word := range weakWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func isLowerLetter(r rune) bool { return r >= 'a' && r <= 'z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
