package dashboard

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/dependency/mocks"
	"github.com/jekabolt/stockroom/internal/entity"
	gerr "github.com/jekabolt/stockroom/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memRepository serves purchases and sales from memory the way a store would:
// active only, inside the range, oldest first.
type memRepository struct {
	purchases []entity.Purchase
	sales     []entity.Sale
}

func (m *memRepository) Products() dependency.Products   { return nil }
func (m *memRepository) Purchases() dependency.Purchases { return memPurchases{m} }
func (m *memRepository) Sales() dependency.Sales         { return memSales{m} }
func (m *memRepository) Ping(context.Context) error      { return nil }
func (m *memRepository) Now() time.Time                  { return fixedNow }
func (m *memRepository) Close()                          {}

type memPurchases struct{ *memRepository }

func (m memPurchases) AddPurchase(context.Context, *entity.PurchaseNew) (*entity.Purchase, error) {
	return nil, errors.New("not implemented")
}

func (m memPurchases) ListPurchases(_ context.Context, rng entity.DateRange) ([]entity.Purchase, error) {
	var res []entity.Purchase
	for _, p := range m.purchases {
		if p.Active() && rng.Contains(p.CreatedAt) {
			res = append(res, p)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt < res[j].CreatedAt })
	return res, nil
}

func (m memPurchases) UpdatePurchase(context.Context, string, *entity.PurchaseInsert) error {
	return errors.New("not implemented")
}

func (m memPurchases) DeletePurchase(context.Context, string) error {
	return errors.New("not implemented")
}

type memSales struct{ *memRepository }

func (m memSales) AddSale(context.Context, *entity.SaleNew) (*entity.Sale, error) {
	return nil, errors.New("not implemented")
}

func (m memSales) ListSales(_ context.Context, rng entity.DateRange) ([]entity.Sale, error) {
	var res []entity.Sale
	for _, s := range m.sales {
		if s.Active() && rng.Contains(s.CreatedAt) {
			res = append(res, s)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt < res[j].CreatedAt })
	return res, nil
}

func (m memSales) UpdateSale(context.Context, string, *entity.SaleInsert) error {
	return errors.New("not implemented")
}

func (m memSales) DeleteSale(context.Context, string) error {
	return errors.New("not implemented")
}

func purchaseAt(id string, ts int64, total entity.Amount) entity.Purchase {
	return entity.Purchase{
		ID:             id,
		PurchaseInsert: entity.PurchaseInsert{Locale: "store", Date: "2024-03-01", TotalValue: total},
		Timestamps:     entity.Timestamps{CreatedAt: ts, UpdatedAt: ts},
	}
}

func saleAt(id string, ts int64, total entity.Amount) entity.Sale {
	return entity.Sale{
		ID:         id,
		SaleInsert: entity.SaleInsert{ClientName: "client", DiscountType: entity.DiscountPercentage, TotalValue: total},
		Timestamps: entity.Timestamps{CreatedAt: ts, UpdatedAt: ts},
	}
}

func newTestService(t *testing.T, rep dependency.Repository) *Service {
	t.Helper()
	s, err := New(&Config{Timezone: "UTC"}, rep, clockAt(fixedNow))
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	rep := &memRepository{}

	_, err := New(&Config{}, rep, nil)
	assert.NoError(t, err)

	_, err = New(&Config{Timezone: "Mars/Olympus_Mons"}, rep, nil)
	assert.Error(t, err)

	_, err = New(&Config{MalformedAmounts: "ignore"}, rep, nil)
	assert.Error(t, err)
}

func TestChartScenario(t *testing.T) {
	rep := &memRepository{
		purchases: []entity.Purchase{purchaseAt("p1", day(2024, 3, 5, 9), "10,50")},
		sales:     []entity.Sale{saleAt("s1", day(2024, 3, 5, 16), "20")},
	}
	s := newTestService(t, rep)

	points, err := s.Chart(context.Background(), entity.DateRangeInput{})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "05/03", points[0].Day)
	assert.Equal(t, "10.5", points[0].Purchases.String())
	assert.Equal(t, "20", points[0].Sales.String())
	assert.Equal(t, "9.5", points[0].Revenue.String())
}

func TestChartDefaultRangeExcludesOtherMonths(t *testing.T) {
	rep := &memRepository{
		purchases: []entity.Purchase{
			purchaseAt("feb", day(2024, 2, 28, 10), "5"),
			purchaseAt("mar", day(2024, 3, 1, 0), "7"),
		},
		sales: []entity.Sale{
			// after the fixed now
			saleAt("late", day(2024, 3, 15, 11), "9"),
		},
	}
	s := newTestService(t, rep)

	points, err := s.Chart(context.Background(), entity.DateRangeInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"01/03"}, days(points))
}

func TestChartDeletedInsideRange(t *testing.T) {
	deleted := purchaseAt("p2", day(2024, 3, 3, 10), "100")
	deletedAt := deleted.CreatedAt + 10
	deleted.DeletedAt = &deletedAt

	purchases := mocks.NewPurchases(t)
	purchases.On("ListPurchases", mock.Anything, mock.Anything).
		Return([]entity.Purchase{purchaseAt("p1", day(2024, 3, 2, 10), "1"), deleted}, nil)
	sales := mocks.NewSales(t)
	sales.On("ListSales", mock.Anything, mock.Anything).Return([]entity.Sale{}, nil)

	rep := mocks.NewRepository(t)
	rep.On("Purchases").Return(purchases)
	rep.On("Sales").Return(sales)

	points, err := newTestService(t, rep).Chart(context.Background(), entity.DateRangeInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"02/03"}, days(points))
}

func TestChartPassesResolvedRange(t *testing.T) {
	wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Unix()
	wantEnd := fixedNow.Unix()
	isDefault := mock.MatchedBy(func(rng entity.DateRange) bool {
		return rng.Start != nil && rng.End != nil && *rng.Start == wantStart && *rng.End == wantEnd
	})

	purchases := mocks.NewPurchases(t)
	purchases.On("ListPurchases", mock.Anything, isDefault).Return(nil, nil)
	sales := mocks.NewSales(t)
	sales.On("ListSales", mock.Anything, isDefault).Return(nil, nil)

	rep := mocks.NewRepository(t)
	rep.On("Purchases").Return(purchases)
	rep.On("Sales").Return(sales)

	points, err := newTestService(t, rep).Chart(context.Background(), entity.DateRangeInput{InitialDate: "yesterday"})
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestChartDataAccessError(t *testing.T) {
	cause := errors.New("connection refused")

	purchases := mocks.NewPurchases(t)
	purchases.On("ListPurchases", mock.Anything, mock.Anything).Return(nil, cause)
	sales := mocks.NewSales(t)
	sales.On("ListSales", mock.Anything, mock.Anything).
		Return([]entity.Sale{saleAt("s1", day(2024, 3, 2, 10), "1")}, nil)

	rep := mocks.NewRepository(t)
	rep.On("Purchases").Return(purchases)
	rep.On("Sales").Return(sales)

	points, err := newTestService(t, rep).Chart(context.Background(), entity.DateRangeInput{})
	assert.Nil(t, points)
	require.Error(t, err)
	assert.True(t, gerr.IsDataAccess(err))
	assert.ErrorIs(t, err, cause)

	var dae *gerr.DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, "list purchases", dae.Op)
}

// Charts over two adjacent ranges add up to the chart over their union.
func TestChartAdditivity(t *testing.T) {
	rep := &memRepository{}
	for i := 0; i < 30; i++ {
		ts := day(2024, 1, 1+i, i%24)
		rep.purchases = append(rep.purchases, purchaseAt("p", ts, entity.Amount(decimal.New(int64(100+i*37), -2).String())))
		if i%3 != 0 {
			rep.sales = append(rep.sales, saleAt("s", ts+3600, entity.Amount(decimal.New(int64(250+i*11), -2).String())))
		}
	}
	s := newTestService(t, rep)
	ctx := context.Background()

	whole, err := s.Chart(ctx, entity.DateRangeInput{InitialDate: "2024-01-01", LastDate: "2024-02-01"})
	require.NoError(t, err)
	first, err := s.Chart(ctx, entity.DateRangeInput{InitialDate: "2024-01-01", LastDate: "2024-01-13"})
	require.NoError(t, err)
	second, err := s.Chart(ctx, entity.DateRangeInput{InitialDate: "2024-01-13", LastDate: "2024-02-01"})
	require.NoError(t, err)

	merged := map[string]entity.ChartPoint{}
	for _, p := range append(first, second...) {
		m, ok := merged[p.Day]
		if !ok {
			merged[p.Day] = p
			continue
		}
		m.Purchases = m.Purchases.Add(p.Purchases)
		m.Sales = m.Sales.Add(p.Sales)
		m.Revenue = m.Revenue.Add(p.Revenue)
		merged[p.Day] = m
	}

	require.Len(t, merged, len(whole))
	for _, p := range whole {
		m, ok := merged[p.Day]
		require.True(t, ok, p.Day)
		assert.True(t, p.Purchases.Equal(m.Purchases), p.Day)
		assert.True(t, p.Sales.Equal(m.Sales), p.Day)
		assert.True(t, p.Revenue.Equal(m.Revenue), p.Day)
	}
}
