package repository

import (
	"github.com/shopspring/decimal"

	"greencart/shophub/internal/model"
)

// SeedProducts is the built-in demo catalog, used when no catalog file is
// configured.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:                  "1",
			Title:               "Premium Gaming Chair",
			Description:         "Ergonomic gaming chair with recycled-foam padding",
			Category:            model.CategoryGaming,
			Price:               decimal.NewFromFloat(99.99),
			Rating:              4.3,
			ReviewCount:         2145,
			SustainabilityScore: 85,
			CarbonFootprint:     18.5,
		},
		{
			ID:                  "2",
			Title:               "Gaming Headset Razer Blackshark V2 X",
			Description:         "Wired esports headset",
			Category:            model.CategoryGaming,
			Price:               decimal.NewFromFloat(39.99),
			Rating:              4.1,
			ReviewCount:         1890,
			SustainabilityScore: 62,
			CarbonFootprint:     4.2,
		},
		{
			ID:                  "3",
			Title:               "NFL Foco Mens Team Logo Casual Hat",
			Description:         "Team logo hat, organic cotton blend",
			Category:            model.CategoryApparel,
			Price:               decimal.NewFromFloat(29.99),
			Rating:              4.2,
			ReviewCount:         1500,
			SustainabilityScore: 78,
			CarbonFootprint:     1.8,
		},
		{
			ID:                  "4",
			Title:               "NFL Pro Line Mens Classic Jersey",
			Description:         "Classic fit jersey",
			Category:            model.CategoryApparel,
			Price:               decimal.NewFromFloat(99.99),
			Rating:              4.5,
			ReviewCount:         2300,
			SustainabilityScore: 55,
			CarbonFootprint:     6.4,
		},
		{
			ID:                  "5",
			Title:               "NFL Wincraft Buffalo Bills 3x5 Grommet Flag",
			Description:         "Outdoor polyester flag",
			Category:            model.CategoryApparel,
			Price:               decimal.NewFromFloat(19.99),
			Rating:              4.0,
			ReviewCount:         800,
			SustainabilityScore: 40,
			CarbonFootprint:     2.1,
		},
		{
			ID:                  "6",
			Title:               "Bic Xtra Smooth Mechanical Pencils",
			Description:         "Pack of mechanical pencils with erasers",
			Category:            model.CategorySchool,
			Price:               decimal.NewFromFloat(4.99),
			Rating:              3.9,
			ReviewCount:         500,
			SustainabilityScore: 48,
			CarbonFootprint:     0.3,
		},
		{
			ID:                  "7",
			Title:               "Fivestar Spiral Notebook (5 Subject)",
			Description:         "Recycled-paper spiral notebook",
			Category:            model.CategorySchool,
			Price:               decimal.NewFromFloat(6.99),
			Rating:              4.3,
			ReviewCount:         600,
			SustainabilityScore: 88,
			CarbonFootprint:     0.5,
		},
		{
			ID:                  "8",
			Title:               "Jansport Superbreak One Backpack",
			Description:         "Daypack made from recycled fabric",
			Category:            model.CategorySchool,
			Price:               decimal.NewFromFloat(39.99),
			Rating:              4.6,
			ReviewCount:         1200,
			SustainabilityScore: 82,
			CarbonFootprint:     3.7,
		},
		{
			ID:                  "9",
			Title:               "Dell Latitude 3000 3540 Laptop",
			Description:         "15.6 inch business laptop",
			Category:            model.CategoryTech,
			Price:               decimal.NewFromFloat(799.99),
			Rating:              4.4,
			ReviewCount:         950,
			SustainabilityScore: 68,
			CarbonFootprint:     52.0,
		},
		{
			ID:                  "10",
			Title:               "Dell Optical Mouse",
			Description:         "Wired optical mouse",
			Category:            model.CategoryTech,
			Price:               decimal.NewFromFloat(19.99),
			Rating:              4.2,
			ReviewCount:         450,
			SustainabilityScore: 58,
			CarbonFootprint:     1.1,
		},
		{
			ID:                  "11",
			Title:               "Dell Wired Keyboard",
			Description:         "Full-size wired keyboard",
			Category:            model.CategoryTech,
			Price:               decimal.NewFromFloat(29.99),
			Rating:              4.0,
			ReviewCount:         300,
			SustainabilityScore: 56,
			CarbonFootprint:     2.3,
		},
		{
			ID:                  "12",
			Title:               "JBL Go 3 Speaker",
			Description:         "Portable bluetooth speaker",
			Category:            model.CategoryTech,
			Price:               decimal.NewFromFloat(59.99),
			Rating:              4.5,
			ReviewCount:         700,
			SustainabilityScore: 73,
			CarbonFootprint:     2.9,
		},
	}
}
