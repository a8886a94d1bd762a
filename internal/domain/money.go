package domain

import (
	"fmt"
	"math"
)

// DollarsToCents converts a float64 price to int64 cents. It rejects
// inputs with more than 2 decimal places. Uses math.Round after
// scaling to absorb floating-point representation artifacts.
func DollarsToCents(f float64) (int64, error) {
	scaled := math.Round(f * 1000)
	if math.Mod(scaled, 10) != 0 {
		return 0, fmt.Errorf("prices must have at most 2 decimal places")
	}
	return int64(math.Round(f * 100)), nil
}

// CentsToDollars converts int64 cents to a float64 price.
func CentsToDollars(c int64) float64 {
	return float64(c) / 100.0
}

// RoundToCents rounds an unconstrained float64 price to the nearest
// cent, for values produced by the price synthesizer rather than
// parsed from requests.
func RoundToCents(f float64) int64 {
	return int64(math.Round(f * 100))
}
