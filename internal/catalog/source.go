package catalog

import (
	"context"
	"fmt"

	"pricecompare/internal/product"
)

// SeedSource serves the built-in catalog.
type SeedSource struct{}

func (SeedSource) Load(context.Context) ([]product.Product, error) {
	return SeedProducts(), nil
}

// Load builds a Store from src. It is called once at process start.
func Load(ctx context.Context, src Source) (*Store, error) {
	products, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	store, err := New(products)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return store, nil
}
