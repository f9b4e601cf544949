package catalog

import (
	"context"

	"pricecompare/internal/product"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=catalog

// Repository answers catalog queries. Store is the production implementation.
type Repository interface {
	ListAll() []product.Product
	Search(query string) []product.Product
}

// Source supplies the products a Store is built from at startup.
type Source interface {
	Load(ctx context.Context) ([]product.Product, error)
}
