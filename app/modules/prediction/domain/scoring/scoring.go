// Package scoring holds the pure podium scoring rules: the point value a
// prediction earns against a recorded result, and the per-slot match
// breakdown used for statistics.
package scoring

import (
	"errors"
	"strings"
)

// Default point values applied when a season has no configured rules.
const (
	DefaultExactMatchPoints = 25
	DefaultOneOffPoints     = 18
	DefaultTwoOffPoints     = 15
)

// Rules are the per-season scoring constants.
type Rules struct {
	ExactMatchPoints int
	OneOffPoints     int
	TwoOffPoints     int
}

// DefaultRules returns the rules applied when a season has none configured.
func DefaultRules() Rules {
	return Rules{
		ExactMatchPoints: DefaultExactMatchPoints,
		OneOffPoints:     DefaultOneOffPoints,
		TwoOffPoints:     DefaultTwoOffPoints,
	}
}

var (
	ErrNegativePoints = errors.New("scoring rules must be non-negative")
	ErrExactNotMax    = errors.New("exact match points must be at least one-off and two-off points")
)

// Validate checks the rule invariants: all values non-negative, and an exact
// match never worth less than the lower tiers.
func (r Rules) Validate() error {
	if r.ExactMatchPoints < 0 || r.OneOffPoints < 0 || r.TwoOffPoints < 0 {
		return ErrNegativePoints
	}
	if r.ExactMatchPoints < r.OneOffPoints || r.ExactMatchPoints < r.TwoOffPoints {
		return ErrExactNotMax
	}
	return nil
}

// MatchBreakdown counts per-slot matches by how far the predicted position
// was from the actual position.
type MatchBreakdown struct {
	ExactMatches  int
	OneOffMatches int
	TwoOffMatches int
}

// normalize prepares a name for comparison. An empty result means the slot
// holds no prediction.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CalculatePoints scores a predicted podium against the actual podium.
//
// A perfect positional match earns ExactMatchPoints. Otherwise the score is
// tiered by how many predicted names appear anywhere on the actual podium:
// all three earn OneOffPoints, exactly two earn TwoOffPoints, fewer earn
// nothing. Comparison is case-insensitive and whitespace-trimmed; blank
// slots never match. The function is total and never fails.
func CalculatePoints(predicted, actual [3]string, rules Rules) int {
	var p, a [3]string
	for i := 0; i < 3; i++ {
		p[i] = normalize(predicted[i])
		a[i] = normalize(actual[i])
	}

	exact := true
	for i := 0; i < 3; i++ {
		if p[i] == "" || p[i] != a[i] {
			exact = false
			break
		}
	}
	if exact {
		return rules.ExactMatchPoints
	}

	actualSet := make(map[string]struct{}, 3)
	for i := 0; i < 3; i++ {
		if a[i] != "" {
			actualSet[a[i]] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, 3)
	hits := 0
	for i := 0; i < 3; i++ {
		if p[i] == "" {
			continue
		}
		if _, dup := seen[p[i]]; dup {
			continue
		}
		seen[p[i]] = struct{}{}
		if _, ok := actualSet[p[i]]; ok {
			hits++
		}
	}

	switch hits {
	case 3:
		return rules.OneOffPoints
	case 2:
		return rules.TwoOffPoints
	default:
		return 0
	}
}

// ClassifyMatches counts, for each predicted slot, how far the prediction
// landed from the competitor's actual position: distance 0 is an exact
// match, 1 a one-off, 2 a two-off. Slots whose competitor is absent from
// the actual podium contribute nothing.
//
// Note this breakdown is position-difference based while CalculatePoints
// tiers by set intersection, so the two can legitimately disagree: a
// prediction with all three names correct but fully scrambled earns the
// one-off point tier yet may register zero exact matches here. The counters
// feed statistics only and never influence the point value.
func ClassifyMatches(predicted, actual [3]string) MatchBreakdown {
	var breakdown MatchBreakdown

	for i := 0; i < 3; i++ {
		name := normalize(predicted[i])
		if name == "" {
			continue
		}
		pos := -1
		for j := 0; j < 3; j++ {
			if normalize(actual[j]) == name {
				pos = j
				break
			}
		}
		if pos < 0 {
			continue
		}
		switch diff(i, pos) {
		case 0:
			breakdown.ExactMatches++
		case 1:
			breakdown.OneOffMatches++
		case 2:
			breakdown.TwoOffMatches++
		}
	}
	return breakdown
}

func diff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
