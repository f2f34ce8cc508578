package tides

import (
	"github.com/shopspring/decimal"
)

// displayPlaces is the precision heights are shown with.
const displayPlaces = 2

// RoundHeight rounds h half away from zero to two decimal places. It works in
// decimal so values like 1.005 round up as a reader would expect.
func RoundHeight(h float64) float64 {
	return decimal.NewFromFloat(h).Round(displayPlaces).InexactFloat64()
}
