package domain

import "math"

const (
	monthsPerYear  = 12
	ouncesPerPound = 16
	compareEpsilon = 1e-9
)

// AgeFromParts combines whole years and months (0 to 11) into fractional years.
func AgeFromParts(years, months int) float64 {
	return float64(years) + float64(months)/monthsPerYear
}

// SplitAge splits fractional years into whole years and months.
// Months are rounded to the nearest month; 12 carries into the next year.
func SplitAge(total float64) (years, months int) {
	return split(total, monthsPerYear)
}

// WeightFromParts combines whole pounds and ounces (0 to 15) into fractional pounds.
func WeightFromParts(pounds, ounces int) float64 {
	return float64(pounds) + float64(ounces)/ouncesPerPound
}

// SplitWeight splits fractional pounds into whole pounds and ounces.
// Ounces are rounded to the nearest ounce; 16 carries into the next pound.
func SplitWeight(total float64) (pounds, ounces int) {
	return split(total, ouncesPerPound)
}

func split(total float64, unitsPerWhole int) (int, int) {
	if math.IsNaN(total) || total <= 0 {
		return 0, 0
	}
	whole := math.Floor(total + compareEpsilon)
	part := int(math.Round((total - whole) * float64(unitsPerWhole)))
	if part < 0 {
		part = 0
	}
	if part >= unitsPerWhole {
		whole++
		part = 0
	}
	return int(whole), part
}
