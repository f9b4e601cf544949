package catalog

import (
	"pricecompare/internal/product"
)

// Service translates list and search requests into catalog queries.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []product.Product {
	return nonNil(s.repo.ListAll())
}

// Search matches query against product names. An empty query lists the
// whole catalog.
func (s *Service) Search(query string) []product.Product {
	return nonNil(s.repo.Search(query))
}

// nonNil keeps "no results" encoded as [] rather than null.
func nonNil(products []product.Product) []product.Product {
	if products == nil {
		return []product.Product{}
	}
	return products
}
