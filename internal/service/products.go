package service

import (
	"math"

	"greencart/shophub/internal/model"
	"greencart/shophub/internal/repository"
	"greencart/shophub/pkg/random"
)

// ecoFriendlyThreshold marks a product as eco-friendly for listing stats.
const ecoFriendlyThreshold = 70

type ProductDetail struct {
	model.ProductView
	Sustainability model.SustainabilityInfo `json:"sustainabilityInfo"`
}

type SustainabilityStats struct {
	AverageFootprint float64 `json:"averageFootprint"`
	EcoFriendlyCount int     `json:"ecoFriendlyCount"`
}

type ProductListing struct {
	Products []ProductDetail     `json:"products"`
	Stats    SustainabilityStats `json:"sustainabilityStats"`
}

type ProductService interface {
	GetProduct(productID string) (ProductDetail, error)
	ListProducts(category string, sustainableOnly bool) ProductListing
}

type productService struct {
	catalog repository.Catalog
	rng     random.Source
}

func NewProductService(catalog repository.Catalog, rng random.Source) ProductService {
	return &productService{catalog: catalog, rng: rng}
}

func (s *productService) GetProduct(productID string) (ProductDetail, error) {
	product, ok := s.catalog.Lookup(productID)
	if !ok {
		return ProductDetail{}, ErrProductNotFound
	}
	return s.detail(product), nil
}

func (s *productService) ListProducts(category string, sustainableOnly bool) ProductListing {
	listing := ProductListing{Products: []ProductDetail{}}

	var footprintSum float64
	for _, product := range s.catalog.List() {
		if category != "" && string(product.Category) != category {
			continue
		}
		if sustainableOnly && product.SustainabilityScore <= ecoFriendlyThreshold {
			continue
		}
		listing.Products = append(listing.Products, s.detail(product))
		footprintSum += product.CarbonFootprint
		if product.SustainabilityScore > ecoFriendlyThreshold {
			listing.Stats.EcoFriendlyCount++
		}
	}

	if n := len(listing.Products); n > 0 {
		listing.Stats.AverageFootprint = round2(footprintSum / float64(n))
	}
	return listing
}

func (s *productService) detail(p model.Product) ProductDetail {
	return ProductDetail{
		ProductView: p.View(),
		Sustainability: model.SustainabilityInfo{
			Rating:                   p.SustainabilityRating(),
			MadeFromRecycled:         p.MadeFromRecycled(),
			EnvironmentallyCertified: p.EnvironmentallyCertified(),
			WaterUsageLiters:         s.rng.IntBetween(50, 200),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
