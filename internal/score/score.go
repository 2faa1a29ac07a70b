// Package score computes the composite evaluation score of a game from its
// six sub-scores.
package score

import (
	"math"
	"strconv"
	"strings"
)

// Count is the number of sub-scores per game.
const Count = 6

// Min and Max bound a sub-score on the editing surface.
const (
	Min = 0.0
	Max = 5.0
)

// Names lists the sub-scores in storage order.
var Names = [Count]string{
	"satisfaction",
	"immersion",
	"gameplay",
	"graphics",
	"sound",
	"completeness",
}

// Set holds one value per sub-score, in the order of Names.
type Set [Count]float64

// Total returns the mean of the six values rounded to one decimal place.
// Ties round half away from zero: a mean of 2.25 gives 2.3.
func Total(s Set) float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return Round(sum / Count)
}

// Round rounds v to one decimal place, half away from zero.
func Round(v float64) float64 {
	return math.Round(v*10) / 10
}

// Parse reads a stored sub-score. Empty or non-numeric text yields 0.
func Parse(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseSet parses up to Count values. Missing values are 0; extras are ignored.
func ParseSet(values ...string) Set {
	var s Set
	for i := 0; i < Count && i < len(values); i++ {
		s[i] = Parse(values[i])
	}
	return s
}

// Clamp limits v to [Min, Max].
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}

// Format renders a score for storage: "4.2", "0.0", "3.75".
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
