// Package readability estimates the reading grade level of educational
// content. The estimator is a deliberately simple long-word-ratio heuristic
// used for dashboard display; it is not a validated readability formula and
// should not be treated as clinically meaningful.
package readability

import (
	"math"
	"strings"
	"unicode"
)

// Grade bounds and heuristic coefficients.
const (
	MinGrade = 2
	MaxGrade = 14

	// hardWordLength is the alphabetic length at or above which a word
	// counts as "hard".
	hardWordLength = 8

	baseGrade   = 4
	ratioWeight = 12
)

// EstimateGradeLevel maps a text to an approximate reading grade level in
// [MinGrade, MaxGrade]. Words are split on whitespace; a word is hard when
// its alphabetic-only length is at least eight; the grade is
// round(4 + hardRatio*12), clamped. Deterministic and pure.
func EstimateGradeLevel(text string) int {
	words := strings.Fields(text)

	ratio := 0.0
	if len(words) > 0 {
		hard := 0
		for _, word := range words {
			if alphabeticLength(word) >= hardWordLength {
				hard++
			}
		}
		ratio = float64(hard) / float64(len(words))
	}

	grade := int(math.Round(baseGrade + ratio*ratioWeight))
	if grade < MinGrade {
		return MinGrade
	}
	if grade > MaxGrade {
		return MaxGrade
	}
	return grade
}

// alphabeticLength counts only the letters in a word, so punctuation and
// digits never push a word over the hard-word threshold.
func alphabeticLength(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
