package inventory

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/stockroom/internal/dto"
	"github.com/jekabolt/stockroom/internal/entity"
	"github.com/jekabolt/stockroom/internal/form"
)

// lineProducts loads the products referenced by the given lines, deleted
// products included so old records still show what was bought or sold.
func (s *Server) lineProducts(ctx context.Context, items ...[]entity.LineItem) (map[string]entity.Product, error) {
	ids := dto.LineItemProductIds(items...)
	if len(ids) == 0 {
		return map[string]entity.Product{}, nil
	}
	products, err := s.repo.Products().GetProductsByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return dto.IndexProducts(products), nil
}

func (s *Server) getPurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	purchases, err := s.repo.Purchases().ListPurchases(ctx, entity.DateRange{})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get purchases",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}

	items := make([][]entity.LineItem, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, p.Items)
	}
	products, err := s.lineProducts(ctx, items...)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get purchased products",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}

	render.Render(w, r, NewDataResponse(http.StatusOK, dto.ConvertEntityPurchases(purchases, products)))
}

func (s *Server) addPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := &form.AddPurchaseRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	p, err := s.repo.Purchases().AddPurchase(ctx, data.ToEntity())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't add purchase",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewDataResponse(http.StatusCreated, dto.ConvertEntityPurchase(p, nil)))
}

func (s *Server) updatePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	data := &form.UpdatePurchaseRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := s.repo.Purchases().UpdatePurchase(ctx, id, &data.PurchaseInsert); err != nil {
		slog.Default().ErrorContext(ctx, "can't update purchase",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewMessageResponse(http.StatusOK, "Purchase updated successfully"))
}

func (s *Server) deletePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if err := s.repo.Purchases().DeletePurchase(ctx, id); err != nil {
		slog.Default().ErrorContext(ctx, "can't delete purchase",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewMessageResponse(http.StatusOK, "Purchase deleted successfully"))
}
