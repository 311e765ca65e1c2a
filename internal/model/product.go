package model

import (
	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryGaming  ProductCategory = "gaming"
	CategoryApparel ProductCategory = "apparel"
	CategorySchool  ProductCategory = "school"
	CategoryTech    ProductCategory = "tech"
)

// Product is a catalog entry. The catalog is immutable after startup.
type Product struct {
	ID                  string
	Title               string
	Description         string
	Category            ProductCategory
	Price               decimal.Decimal
	Rating              float64
	ReviewCount         int
	SustainabilityScore int     // 0-100
	CarbonFootprint     float64 // kg CO2e per unit
}

// SustainabilityRating maps the product's score to a display label.
func (p Product) SustainabilityRating() string {
	return RatingForScore(p.SustainabilityScore)
}

// RatingForScore maps a 0-100 sustainability score to a display label.
func RatingForScore(score int) string {
	switch {
	case score > 85:
		return "Excellent"
	case score > 70:
		return "Good"
	case score > 50:
		return "Average"
	default:
		return "Below Average"
	}
}

func (p Product) MadeFromRecycled() bool {
	return p.SustainabilityScore > 75
}

func (p Product) EnvironmentallyCertified() bool {
	return p.SustainabilityScore > 80
}

// ProductView is the wire representation of a Product, with the price
// rendered as a currency string.
type ProductView struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description,omitempty"`
	Category            ProductCategory `json:"category"`
	Price               string          `json:"price"`
	Rating              float64         `json:"rating,omitempty"`
	ReviewCount         int             `json:"reviewCount,omitempty"`
	SustainabilityScore int             `json:"sustainabilityScore"`
	CarbonFootprint     float64         `json:"carbonFootprint"`
}

func (p Product) View() ProductView {
	return ProductView{
		ID:                  p.ID,
		Title:               p.Title,
		Description:         p.Description,
		Category:            p.Category,
		Price:               FormatMoney(p.Price),
		Rating:              p.Rating,
		ReviewCount:         p.ReviewCount,
		SustainabilityScore: p.SustainabilityScore,
		CarbonFootprint:     p.CarbonFootprint,
	}
}

// SustainabilityInfo is the derived block attached to product responses.
// WaterUsageLiters comes from the injected randomness source, not the catalog.
type SustainabilityInfo struct {
	Rating                   string `json:"rating"`
	MadeFromRecycled         bool   `json:"madeFromRecycled"`
	EnvironmentallyCertified bool   `json:"environmentallyCertified"`
	WaterUsageLiters         int    `json:"waterUsageLiters"`
}

// FormatMoney renders a decimal amount as "$x.xx".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
