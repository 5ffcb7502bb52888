package dashboard

import (
	"context"

	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/entity"
	gerr "github.com/jekabolt/stockroom/internal/errors"
	"golang.org/x/sync/errgroup"
)

// Fetcher loads the purchases and sales a chart is built from.
type Fetcher struct {
	rep dependency.Repository
}

func NewFetcher(rep dependency.Repository) *Fetcher {
	return &Fetcher{rep: rep}
}

// Fetch queries both collections in parallel. Either failure fails the whole
// fetch with a DataAccessError, nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, rng entity.DateRange) (purchases, sales []entity.MonetaryRecord, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ps, err := f.rep.Purchases().ListPurchases(ctx, rng)
		if err != nil {
			return gerr.DataAccess("list purchases", err)
		}
		purchases = make([]entity.MonetaryRecord, 0, len(ps))
		for i := range ps {
			if ps[i].Active() {
				purchases = append(purchases, ps[i].Monetary())
			}
		}
		return nil
	})

	g.Go(func() error {
		ss, err := f.rep.Sales().ListSales(ctx, rng)
		if err != nil {
			return gerr.DataAccess("list sales", err)
		}
		sales = make([]entity.MonetaryRecord, 0, len(ss))
		for i := range ss {
			if ss[i].Active() {
				sales = append(sales, ss[i].Monetary())
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return purchases, sales, nil
}
