package util

import (
	"fmt"
	"math"
	"strconv"
)

// MlToLiters converts milliliters to liters, rounded to 2 decimal places
func MlToLiters(ml float64) float64 {
	return math.Round(ml/10) / 100
}

// LitersToMl converts liters to whole milliliters
func LitersToMl(liters float64) int {
	return int(liters * 1000)
}

// MlToCups converts milliliters to cups of the given size, rounded to 1
// decimal place
func MlToCups(ml, cupSize float64) float64 {
	if cupSize <= 0 {
		return 0
	}
	return math.Round(ml/cupSize*10) / 10
}

// FormatVolume renders a milliliter amount for display: plain ml below one
// liter, liters above
func FormatVolume(ml float64) string {
	if math.Abs(ml) < 1000 {
		return FormatAmount(ml) + " ml"
	}
	return strconv.FormatFloat(MlToLiters(ml), 'f', -1, 64) + " L"
}

// FormatAmount renders a numeric amount with minimal decimal text, so
// whole numbers carry no trailing ".0"
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a percentage with one decimal place
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
