// Package similarity scores submitted values against a block secret.
package similarity

import (
	"math"
	"unicode"
)

const (
	// Max is the score of an exact match.
	Max = 100.0
	// maxBonus bounds the shared-character bonus.
	maxBonus = 10.0
	// nearMiss is the highest score a value other than the secret can get.
	nearMiss = 99.99
)

// Score returns a similarity in [0,100]. Only the secret itself scores exactly 100.
func Score(submitted, secret string) float64 {
	if submitted == "" || secret == "" {
		return 0
	}
	if submitted == secret {
		return Max
	}

	a, b := []rune(submitted), []rune(secret)
	maxLen := max(len(a), len(b))
	base := float64(maxLen-Distance(submitted, secret)) / float64(maxLen) * Max

	score := round2(base + bonus(a, b))
	return math.Min(score, nearMiss)
}

// Distance is the Levenshtein distance between a and b counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// bonus rewards the share of the secret's distinct characters present in the submission.
func bonus(submitted, secret []rune) float64 {
	want := distinctFold(secret)
	if len(want) == 0 {
		return 0
	}
	have := distinctFold(submitted)
	shared := 0
	for r := range want {
		if _, ok := have[r]; ok {
			shared++
		}
	}
	return maxBonus * float64(shared) / float64(len(want))
}

func distinctFold(runes []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[unicode.ToLower(r)] = struct{}{}
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
