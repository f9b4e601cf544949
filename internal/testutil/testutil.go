package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pricecompare/internal/product"
)

// TestProduct is a fixture whose cheapest offer is Flipkart.
var TestProduct = product.Product{
	ID:       42,
	Name:     "Test Phone",
	Amazon:   product.Offer{Price: 1000, Rating: 4.1, URL: "https://amazon.example/test"},
	Flipkart: product.Offer{Price: 900, Rating: 3.9, URL: "https://flipkart.example/test"},
	Myntra:   product.Offer{Price: 950, Rating: 4.4, URL: "https://myntra.example/test"},
}

// NewProduct returns a valid product with the given id, name and prices.
func NewProduct(id int, name string, amazon, flipkart, myntra int64) product.Product {
	return product.Product{
		ID:       id,
		Name:     name,
		Amazon:   product.Offer{Price: amazon, Rating: 4.0, URL: "https://amazon.example/" + name},
		Flipkart: product.Offer{Price: flipkart, Rating: 4.0, URL: "https://flipkart.example/" + name},
		Myntra:   product.Offer{Price: myntra, Rating: 4.0, URL: "https://myntra.example/" + name},
	}
}

// Serve runs a request through h and returns the recorder.
func Serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

// DecodeJSON decodes the recorded body into T, failing the test on error.
func DecodeJSON[T any](t testing.TB, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return v
}

// Names returns the product names in order.
func Names(products []product.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}
