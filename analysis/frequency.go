// Package analysis computes letter statistics used to judge cipher output
package analysis

import (
	"math"
)

// englishFrequencies holds the relative frequency of a..z in English text.
var englishFrequencies = [26]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015,
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749,
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758,
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074,
}

func letterCounts(text string) ([26]int, int) {
	var counts [26]int
	total := 0
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			counts[r-'a']++
		case r >= 'A' && r <= 'Z':
			counts[r-'A']++
		default:
			continue
		}
		total++
	}
	return counts, total
}

// LetterFrequencies counts ASCII letters case-insensitively, keyed by the
// lower-case letter. Letters that do not occur are omitted.
func LetterFrequencies(text string) map[rune]int {
	counts, _ := letterCounts(text)
	freq := make(map[rune]int)
	for i, c := range counts {
		if c > 0 {
			freq[rune('a'+i)] = c
		}
	}
	return freq
}

// IndexOfCoincidence returns the probability that two letters drawn from text
// are equal. English sits near 0.066, uniform random text near 0.038.
func IndexOfCoincidence(text string) float64 {
	counts, total := letterCounts(text)
	if total < 2 {
		return 0.0
	}

	var sum float64
	for _, c := range counts {
		sum += float64(c) * float64(c-1)
	}
	return sum / (float64(total) * float64(total-1))
}

// ChiSquaredEnglish measures how far the letter distribution of text is from
// English. Lower is closer.
func ChiSquaredEnglish(text string) float64 {
	counts, total := letterCounts(text)
	if total == 0 {
		return 0.0
	}

	var chi float64
	for i, c := range counts {
		expected := englishFrequencies[i] * float64(total)
		diff := float64(c) - expected
		chi += diff * diff / expected
	}

	// Keep the value JSON friendly
	if math.IsInf(chi, 0) || math.IsNaN(chi) {
		return 0.0
	}
	return chi
}
