package repository

import (
	"greencart/shophub/internal/model"
)

// Catalog is a read-only product lookup, fixed at startup.
type Catalog interface {
	Lookup(productID string) (model.Product, bool)
	List() []model.Product
}

type staticCatalog struct {
	products []model.Product
}

func NewStaticCatalog(products []model.Product) Catalog {
	return &staticCatalog{products: products}
}

// Lookup scans the fixed list; absence is a valid outcome, not an error.
func (c *staticCatalog) Lookup(productID string) (model.Product, bool) {
	for _, p := range c.products {
		if p.ID == productID {
			return p, true
		}
	}
	return model.Product{}, false
}

func (c *staticCatalog) List() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}
