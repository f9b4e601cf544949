package catalog

import (
	"errors"
	"fmt"
	"strings"

	"pricecompare/internal/product"
)

var ErrDuplicateID = errors.New("duplicate product id")

// Store is the read-only product catalog. It is built once and never
// mutated, so it is safe for concurrent use without locking.
type Store struct {
	products []product.Product
}

// New builds a Store from products, keeping their order. The input slice is
// copied; later changes to it do not reach the Store.
func New(products []product.Product) (*Store, error) {
	seen := make(map[int]struct{}, len(products))
	items := make([]product.Product, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		seen[p.ID] = struct{}{}
		items = append(items, p)
	}
	return &Store{products: items}, nil
}

// ListAll returns every product in catalog order.
func (s *Store) ListAll() []product.Product {
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Search returns the products whose name contains query, ignoring case.
// Catalog order is kept and an empty query matches everything.
func (s *Store) Search(query string) []product.Product {
	needle := strings.ToLower(query)
	out := make([]product.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Len() int {
	return len(s.products)
}
