package inventory

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/stockroom/internal/dto"
	"github.com/jekabolt/stockroom/internal/form"
)

func (s *Server) getProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	products, err := s.repo.Products().GetProducts(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get products",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.JSON(w, r, dto.ConvertEntityProducts(products))
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := &form.ProductRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	p, err := s.repo.Products().AddProduct(ctx, &data.ProductInsert)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't add product",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewDataResponse(http.StatusCreated, p))
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	data := &form.ProductRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := s.repo.Products().UpdateProduct(ctx, id, &data.ProductInsert); err != nil {
		slog.Default().ErrorContext(ctx, "can't update product",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewMessageResponse(http.StatusOK, "Product updated successfully"))
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if err := s.repo.Products().DeleteProduct(ctx, id); err != nil {
		slog.Default().ErrorContext(ctx, "can't delete product",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewMessageResponse(http.StatusOK, "Product deleted successfully"))
}
