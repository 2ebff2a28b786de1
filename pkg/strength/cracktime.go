package strength

import (
	"fmt"
	"math"
)

// Average-case guesses against modern hardware doing 1e9 guesses/sec:
// half the keyspace, so 2^bits / 2e9 seconds.
const guessesPerSecond = 2e9

func crackTime(entropyBits float64) string {
	if entropyBits <= 0 {
		return "instantly"
	}

	seconds := math.Pow(2, entropyBits) / guessesPerSecond

	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%.1f hours", seconds/3600)
	case seconds < 31536000:
		return fmt.Sprintf("%.1f days", seconds/86400)
	case seconds < 31536000000:
		return fmt.Sprintf("%.1f years", seconds/31536000)
	default:
		return "more than 1000 years"
	}
}
