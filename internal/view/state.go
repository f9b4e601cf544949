// Package view holds the client-side state machine for the product list:
// query text, filter selections, loading status and the last product list
// received from the API.
package view

import (
	"pricecompare/internal/product"
)

type Status int

const (
	Idle Status = iota
	LoadingInitial
	LoadingSearch
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case LoadingInitial:
		return "loadingInitial"
	case LoadingSearch:
		return "loadingSearch"
	}
	return "unknown"
}

// State is a snapshot of everything the renderer needs.
type State struct {
	Query    string
	Filters  Filters
	Status   Status
	Products []product.Product
}

// Searching reports whether the search spinner is shown.
func (s State) Searching() bool {
	return s.Status == LoadingSearch
}

// LoadingProducts reports whether the full-list loading indicator is shown.
func (s State) LoadingProducts() bool {
	return s.Status == LoadingInitial
}

func (s State) clone() State {
	out := s
	if s.Products != nil {
		out.Products = make([]product.Product, len(s.Products))
		copy(out.Products, s.Products)
	}
	return out
}
