package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/jekabolt/stockroom/internal/entity"
	gerr "github.com/jekabolt/stockroom/internal/errors"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// Resolver turns the optional dashboard bounds into a DateRange.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

func NewResolver(loc *time.Location, now func() time.Time) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Resolver{loc: loc, now: now}
}

// Resolve substitutes missing or unparseable bounds: the start falls back to the
// first day of the current month at midnight, the end to the current moment.
func (r *Resolver) Resolve(in entity.DateRangeInput) entity.DateRange {
	now := r.now().In(r.loc)

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, r.loc)
	if t, err := r.parse(in.InitialDate); err == nil {
		start = t
	}
	end := now
	if t, err := r.parse(in.LastDate); err == nil {
		end = t
	}

	s, e := start.Unix(), end.Unix()
	return entity.DateRange{Start: &s, End: &e}
}

func (r *Resolver) parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", gerr.ErrInvalidDateInput)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, r.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", gerr.ErrInvalidDateInput, s)
}
