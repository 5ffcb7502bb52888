// Package inventory serves the products, purchases, sales and dashboard API.
package inventory

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/entity"
)

// Charter builds the dashboard chart for a date range.
type Charter interface {
	Chart(ctx context.Context, in entity.DateRangeInput) ([]entity.ChartPoint, error)
}

// Server implements handlers for the inventory API.
type Server struct {
	repo      dependency.Repository
	dashboard Charter
}

// New creates a new server with inventory handlers.
func New(r dependency.Repository, d Charter) *Server {
	return &Server{
		repo:      r,
		dashboard: d,
	}
}

// Routes returns the API router, meant to be mounted under /api.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// set before Route so every sub router inherits them
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, ErrMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, ErrRouteNotFound)
	})

	r.Get("/health", s.health)
	r.Get("/dashboard", s.getDashboard)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.getProducts)
		r.Post("/", s.addProduct)
		r.Put("/{id}", s.updateProduct)
		r.Delete("/{id}", s.deleteProduct)
	})

	r.Route("/purchases", func(r chi.Router) {
		r.Get("/", s.getPurchases)
		r.Post("/", s.addPurchase)
		r.Put("/{id}", s.updatePurchase)
		r.Delete("/{id}", s.deletePurchase)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Get("/", s.getSales)
		r.Post("/", s.addSale)
		r.Put("/{id}", s.updateSale)
		r.Delete("/{id}", s.deleteSale)
	})

	return r
}
