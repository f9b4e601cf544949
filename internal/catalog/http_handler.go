package catalog

import (
	"net/http"

	"pricecompare/internal/httpx"
)

const HealthMessage = "Product Comparison Backend server is running!"

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /api/products
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.List())
}

// Search handles GET /api/products/search?q=
//
// A missing q is the same as an empty one and returns the whole catalog.
// Zero matches is a 200 with an empty array.
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	httpx.JSON(w, http.StatusOK, h.svc.Search(q))
}

type healthResponse struct {
	Message string `json:"message"`
}

// Health handles GET /api/test
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, healthResponse{Message: HealthMessage})
}

func (h *HTTPHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found")
}
