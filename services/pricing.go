package services

import (
	"strconv"

	"github.com/mazin-goub/Hameed/initializers"
	"github.com/mazin-goub/Hameed/models"
)

const defaultCateringPricePerGuest = 15

// LineTotal prices one delivery line: (base + chosen deltas) * quantity.
func LineTotal(basePrice float64, deltas []float64, quantity int) float64 {
	price := basePrice
	for _, d := range deltas {
		price += d
	}
	return price * float64(quantity)
}

// CateringTotal prices a catering request: a per-guest base plus the
// catering lines at their per-serving price.
func CateringTotal(guestCount int, perGuest float64, lines []models.CateringLine) float64 {
	total := float64(guestCount) * perGuest
	for _, line := range lines {
		total += float64(line.Quantity) * line.PerServing
	}
	return total
}

func CateringPricePerGuest() float64 {
	raw := initializers.GetEnv("CATERING_PRICE_PER_GUEST", "")
	if raw == "" {
		return defaultCateringPricePerGuest
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return defaultCateringPricePerGuest
	}
	return v
}
