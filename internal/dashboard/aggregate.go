package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/stockroom/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	dayKeyLayout         = "02/01"
	dayKeyLayoutWithYear = "02/01/2006"
)

// MalformedPolicy decides what happens to a totalValue that is not a number.
type MalformedPolicy string

const (
	// MalformedReject fails the aggregation.
	MalformedReject MalformedPolicy = "reject"
	// MalformedZero logs the record and counts it as zero.
	MalformedZero MalformedPolicy = "zero"
)

func (p MalformedPolicy) Valid() bool {
	return p == MalformedReject || p == MalformedZero
}

// DayKeyFunc maps a unix timestamp to the key of the day it belongs to.
type DayKeyFunc func(ts int64) string

// DayKey formats days as DD/MM. Without the year, records from different years
// on the same day and month share a key; yearAware switches to DD/MM/YYYY.
func DayKey(loc *time.Location, yearAware bool) DayKeyFunc {
	layout := dayKeyLayout
	if yearAware {
		layout = dayKeyLayoutWithYear
	}
	return func(ts int64) string {
		return time.Unix(ts, 0).In(loc).Format(layout)
	}
}

// Aggregator buckets purchases and sales by day.
type Aggregator struct {
	dayKey DayKeyFunc
	policy MalformedPolicy
}

func NewAggregator(dayKey DayKeyFunc, policy MalformedPolicy) *Aggregator {
	return &Aggregator{dayKey: dayKey, policy: policy}
}

// Aggregate sums totals per day key. Days appear in the order they are first
// seen scanning purchases and then sales, both already sorted by creation time,
// so the result is not necessarily in calendar order.
func (a *Aggregator) Aggregate(ctx context.Context, purchases, sales []entity.MonetaryRecord) ([]entity.DailyTotals, error) {
	var totals []entity.DailyTotals
	index := make(map[string]int)

	add := func(r entity.MonetaryRecord, sale bool) error {
		if !r.Active() {
			return nil
		}
		v, err := a.amount(ctx, r)
		if err != nil {
			return err
		}
		day := a.dayKey(r.CreatedAt)
		i, ok := index[day]
		if !ok {
			i = len(totals)
			index[day] = i
			totals = append(totals, entity.DailyTotals{
				Day:       day,
				Purchases: decimal.Zero,
				Sales:     decimal.Zero,
			})
		}
		if sale {
			totals[i].Sales = totals[i].Sales.Add(v)
		} else {
			totals[i].Purchases = totals[i].Purchases.Add(v)
		}
		return nil
	}

	for _, p := range purchases {
		if err := add(p, false); err != nil {
			return nil, fmt.Errorf("purchase %s: %w", p.ID, err)
		}
	}
	for _, s := range sales {
		if err := add(s, true); err != nil {
			return nil, fmt.Errorf("sale %s: %w", s.ID, err)
		}
	}
	return totals, nil
}

func (a *Aggregator) amount(ctx context.Context, r entity.MonetaryRecord) (decimal.Decimal, error) {
	v, err := r.TotalValue.Decimal()
	if err == nil {
		return v, nil
	}
	if a.policy == MalformedZero {
		slog.Default().WarnContext(ctx, "malformed total value counted as zero",
			slog.String("id", r.ID),
			slog.String("total_value", r.TotalValue.String()),
		)
		return decimal.Zero, nil
	}
	return decimal.Zero, err
}
