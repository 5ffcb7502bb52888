package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/entity"
)

type Config struct {
	// YearAwareDayKey keys days as DD/MM/YYYY instead of DD/MM.
	YearAwareDayKey bool `mapstructure:"year_aware_day_key"`
	// MalformedAmounts is either "reject" or "zero".
	MalformedAmounts string `mapstructure:"malformed_amounts"`
	// Timezone is an IANA location name used for day keys and date bounds.
	Timezone string `mapstructure:"timezone"`
}

// Service builds the dashboard chart: resolve range, fetch, aggregate, shape.
type Service struct {
	resolver   *Resolver
	fetcher    *Fetcher
	aggregator *Aggregator
}

// New returns a dashboard service reading from rep. now is the clock used for
// default bounds, time.Now when nil.
func New(c *Config, rep dependency.Repository, now func() time.Time) (*Service, error) {
	loc := time.Local
	if c.Timezone != "" && c.Timezone != "Local" {
		var err error
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
		}
	}

	policy := MalformedPolicy(c.MalformedAmounts)
	if policy == "" {
		policy = MalformedReject
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown malformed amounts policy %q", c.MalformedAmounts)
	}

	return &Service{
		resolver:   NewResolver(loc, now),
		fetcher:    NewFetcher(rep),
		aggregator: NewAggregator(DayKey(loc, c.YearAwareDayKey), policy),
	}, nil
}

// Chart returns one point per day with activity inside the requested range.
func (s *Service) Chart(ctx context.Context, in entity.DateRangeInput) ([]entity.ChartPoint, error) {
	rng := s.resolver.Resolve(in)

	purchases, sales, err := s.fetcher.Fetch(ctx, rng)
	if err != nil {
		return nil, err
	}

	totals, err := s.aggregator.Aggregate(ctx, purchases, sales)
	if err != nil {
		return nil, err
	}
	return BuildChart(totals), nil
}
