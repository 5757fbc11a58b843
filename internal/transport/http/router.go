package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Routes registers every endpoint on a new mux and wraps it with request
// logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.health)

	mux.HandleFunc("GET /api/v1/categories/{categoryID}/products", h.browseCategory)
	mux.HandleFunc("GET /api/v1/promotions/black-friday", h.browseBlackFriday)
	mux.HandleFunc("GET /api/v1/search/suggestions", h.suggest)
	mux.HandleFunc("GET /api/v1/breeds", h.listBreeds)
	mux.HandleFunc("GET /api/v1/categories", h.listCategories)

	mux.HandleFunc("GET /api/v1/dogs", h.listDogs)
	mux.HandleFunc("POST /api/v1/dogs", h.addDog)
	mux.HandleFunc("PUT /api/v1/dogs/{dogID}", h.updateDog)
	mux.HandleFunc("DELETE /api/v1/dogs/{dogID}", h.removeDog)
	mux.HandleFunc("GET /api/v1/dogs/{dogID}/recommendations", h.recommendForDog)

	mux.HandleFunc("GET /api/v1/products/{productID}/reviews", h.listReviews)
	mux.HandleFunc("POST /api/v1/products/{productID}/reviews", h.submitReview)

	mux.HandleFunc("GET /api/v1/admin/products", h.listAdminProducts)
	mux.HandleFunc("POST /api/v1/admin/products", h.createProduct)
	mux.HandleFunc("PUT /api/v1/admin/products/{productID}", h.updateProduct)
	mux.HandleFunc("DELETE /api/v1/admin/products/{productID}", h.deleteProduct)
	mux.HandleFunc("GET /api/v1/admin/categories", h.listCategories)
	mux.HandleFunc("POST /api/v1/admin/categories", h.createCategory)

	return h.logRequests(mux)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
