package entity

import "github.com/shopspring/decimal"

// DateRangeInput holds the raw bounds of a dashboard request; empty means absent.
type DateRangeInput struct {
	InitialDate string
	LastDate    string
}

// DateRange is a half-open [Start, End) range of unix seconds. A nil bound is
// not applied; with both nil every active record matches.
type DateRange struct {
	Start *int64
	End   *int64
}

func (r DateRange) Unbounded() bool {
	return r.Start == nil && r.End == nil
}

func (r DateRange) Contains(ts int64) bool {
	if r.Start != nil && ts < *r.Start {
		return false
	}
	if r.End != nil && ts >= *r.End {
		return false
	}
	return true
}

// DailyTotals accumulates purchases and sales for one day key.
type DailyTotals struct {
	Day       string
	Purchases decimal.Decimal
	Sales     decimal.Decimal
}

type ChartPoint struct {
	Day       string
	Purchases decimal.Decimal
	Sales     decimal.Decimal
	Revenue   decimal.Decimal
}
