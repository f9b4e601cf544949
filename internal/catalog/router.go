package catalog

import (
	"net/http"

	"go.uber.org/zap"

	"pricecompare/internal/httpx"
)

type RouterOptions struct {
	EnableHSTS bool
}

func get(h http.HandlerFunc) http.Handler {
	return httpx.MethodMux(map[string]http.Handler{http.MethodGet: h})
}

// NewRouter registers the /api routes and wraps them with the middleware
// chain. Cross-origin requests are allowed from any origin.
func NewRouter(h *HTTPHandler, logger *zap.Logger, opts RouterOptions) http.Handler {
	router := http.NewServeMux()

	router.Handle("/api/test", get(h.Health))
	router.Handle("/api/products", get(h.List))
	router.Handle("/api/products/search", get(h.Search))
	router.HandleFunc("/", h.NotFound)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		httpx.CORSMiddleware([]string{httpx.AnyOrigin}),
		httpx.SecurityHeadersMiddleware(opts.EnableHSTS),
	)
}
