package inventory

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/stockroom/internal/dto"
	"github.com/jekabolt/stockroom/internal/entity"
	"github.com/jekabolt/stockroom/internal/form"
)

func (s *Server) getSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sales, err := s.repo.Sales().ListSales(ctx, entity.DateRange{})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get sales",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}

	items := make([][]entity.LineItem, 0, len(sales))
	for _, sl := range sales {
		items = append(items, sl.Items)
	}
	products, err := s.lineProducts(ctx, items...)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get sold products",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}

	render.Render(w, r, NewDataResponse(http.StatusOK, dto.ConvertEntitySales(sales, products)))
}

func (s *Server) addSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := &form.AddSaleRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	sl, err := s.repo.Sales().AddSale(ctx, data.ToEntity())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't add sale",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewDataResponse(http.StatusCreated, dto.ConvertEntitySale(sl, nil)))
}

func (s *Server) updateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	data := &form.SaleRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := s.repo.Sales().UpdateSale(ctx, id, &data.SaleInsert); err != nil {
		slog.Default().ErrorContext(ctx, "can't update sale",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewMessageResponse(http.StatusOK, "Sale updated successfully"))
}

func (s *Server) deleteSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if err := s.repo.Sales().DeleteSale(ctx, id); err != nil {
		slog.Default().ErrorContext(ctx, "can't delete sale",
			slog.String("id", id),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrStore(err))
		return
	}
	render.Render(w, r, NewMessageResponse(http.StatusOK, "Sale deleted successfully"))
}
