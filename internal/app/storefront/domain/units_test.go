package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAge_RoundTrip(t *testing.T) {
	for years := 0; years < 30; years++ {
		for months := 0; months < 12; months++ {
			total := AgeFromParts(years, months)
			gotYears, gotMonths := SplitAge(total)
			if gotYears != years || gotMonths != months {
				t.Fatalf("SplitAge(%v) = %d, %d; want %d, %d", total, gotYears, gotMonths, years, months)
			}
		}
	}
}

func TestWeight_RoundTrip(t *testing.T) {
	for pounds := 0; pounds <= 200; pounds++ {
		for ounces := 0; ounces < 16; ounces++ {
			total := WeightFromParts(pounds, ounces)
			gotPounds, gotOunces := SplitWeight(total)
			if gotPounds != pounds || gotOunces != ounces {
				t.Fatalf("SplitWeight(%v) = %d, %d; want %d, %d", total, gotPounds, gotOunces, pounds, ounces)
			}
		}
	}
}

func TestSplit_EdgeCases(t *testing.T) {
	tests := []struct {
		total      float64
		wantWhole  int
		wantPart   int
		splitterFn func(float64) (int, int)
	}{
		{1.5, 1, 6, SplitAge},
		{1.999, 2, 0, SplitAge},
		{0, 0, 0, SplitAge},
		{-3, 0, 0, SplitAge},
		{12.25, 12, 4, SplitWeight},
		{7.99, 8, 0, SplitWeight},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.total), func(t *testing.T) {
			whole, part := tt.splitterFn(tt.total)
			assert.Equal(t, tt.wantWhole, whole)
			assert.Equal(t, tt.wantPart, part)
		})
	}
}

func TestFromParts(t *testing.T) {
	assert.InDelta(t, 2.5, AgeFromParts(2, 6), 1e-12)
	assert.InDelta(t, 10.75, WeightFromParts(10, 12), 1e-12)
}

func TestSizeCategoryForWeight(t *testing.T) {
	tests := []struct {
		pounds float64
		want   SizeCategory
	}{
		{2, SizeToy},
		{4, SizeToy},
		{4.1, SizeMini},
		{12, SizeMini},
		{25, SizeSmall},
		{50, SizeMedium},
		{90, SizeLarge},
		{90.5, SizeGiant},
		{150, SizeGiant},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v lbs", tt.pounds), func(t *testing.T) {
			assert.Equal(t, tt.want, SizeCategoryForWeight(tt.pounds))
		})
	}
}

func TestParseSizeCategory(t *testing.T) {
	c, err := ParseSizeCategory("Toy")
	assert.NoError(t, err)
	assert.Equal(t, SizeToy, c)
	assert.Equal(t, SizeClassSmall, c.Class())

	c, err = ParseSizeCategory("")
	assert.NoError(t, err)
	assert.Equal(t, SizeAny, c)

	_, err = ParseSizeCategory("standard")
	assert.ErrorIs(t, err, ErrInvalidSize)
}
