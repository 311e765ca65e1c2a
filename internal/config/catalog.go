package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"greencart/shophub/internal/model"
)

type catalogEntry struct {
	ID                  string  `mapstructure:"id"`
	Title               string  `mapstructure:"title"`
	Description         string  `mapstructure:"description"`
	Category            string  `mapstructure:"category"`
	Price               string  `mapstructure:"price"`
	Rating              float64 `mapstructure:"rating"`
	ReviewCount         int     `mapstructure:"review_count"`
	SustainabilityScore int     `mapstructure:"sustainability_score"`
	CarbonFootprint     float64 `mapstructure:"carbon_footprint"`
}

// LoadCatalog reads a yaml product catalog. Prices accept an optional
// leading "$".
func LoadCatalog(path string) ([]model.Product, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var entries []catalogEntry
	if err := v.UnmarshalKey("products", &entries); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog entry without id")
		}
		price, err := decimal.NewFromString(strings.TrimPrefix(e.Price, "$"))
		if err != nil {
			return nil, fmt.Errorf("catalog entry %s: bad price %q: %w", e.ID, e.Price, err)
		}
		products = append(products, model.Product{
			ID:                  e.ID,
			Title:               e.Title,
			Description:         e.Description,
			Category:            model.ProductCategory(e.Category),
			Price:               price,
			Rating:              e.Rating,
			ReviewCount:         e.ReviewCount,
			SustainabilityScore: e.SustainabilityScore,
			CarbonFootprint:     e.CarbonFootprint,
		})
	}
	return products, nil
}
