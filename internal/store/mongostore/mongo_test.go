package mongostore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jekabolt/stockroom/internal/entity"
	gerr "github.com/jekabolt/stockroom/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// newTestStore connects to MONGO_TEST_URI and uses a throwaway database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI is not set")
	}
	s, err := New(&Config{
		URI:      uri,
		Database: fmt.Sprintf("stockroom_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		db, err := s.database()
		if err == nil {
			_ = db.Drop(context.Background())
		}
		s.Close()
	})
	return s
}

func testProduct(code string) entity.ProductInsert {
	return entity.ProductInsert{
		Code:          code,
		Name:          "Shirt " + code,
		Color:         "black",
		Quantity:      2,
		Size:          "M",
		PurchaseValue: "10,50",
		SaleValue:     "25,00",
	}
}

func TestStorePing(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
	assert.NotNil(t, s.client)
}

func TestProductsCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	prd := testProduct("A1")
	p, err := s.Products().AddProduct(ctx, &prd)
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), p.CreatedAt)
	assert.Nil(t, p.DeletedAt)

	now = now.Add(time.Hour)
	prd.Name = "Renamed"
	require.NoError(t, s.Products().UpdateProduct(ctx, p.ID, &prd))

	products, err := s.Products().GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Renamed", products[0].Name)
	assert.Equal(t, now.Unix(), products[0].UpdatedAt)
	assert.Equal(t, entity.Amount("10,50"), products[0].PurchaseValue)

	require.NoError(t, s.Products().DeleteProduct(ctx, p.ID))
	products, err = s.Products().GetProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	// deleted products are still resolvable by id
	byID, err := s.Products().GetProductsByIds(ctx, []string{p.ID, "bogus"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.NotNil(t, byID[0].DeletedAt)

	err = s.Products().DeleteProduct(ctx, p.ID)
	assert.ErrorIs(t, err, gerr.ErrNotFound)
	err = s.Products().UpdateProduct(ctx, bson.NewObjectID().Hex(), &prd)
	assert.ErrorIs(t, err, gerr.ErrNotFound)
}

func TestPurchasesInRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	add := func(ts time.Time, total entity.Amount) *entity.Purchase {
		s.now = func() time.Time { return ts }
		p, err := s.Purchases().AddPurchase(ctx, &entity.PurchaseNew{
			Purchase: &entity.PurchaseInsert{Locale: "store", Date: ts.Format("2006-01-02"), TotalValue: total},
			Products: []entity.ProductInsert{testProduct("P" + string(total))},
		})
		require.NoError(t, err)
		return p
	}

	day := func(d int) time.Time { return time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC) }
	first := add(day(1), "1")
	add(day(2), "2")
	deleted := add(day(3), "3")
	add(day(5), "5")

	require.Len(t, first.Items, 1)
	assert.Equal(t, entity.Amount("10,50"), first.Items[0].UnitPrice)
	assert.Equal(t, 2, first.Items[0].Quantity)

	products, err := s.Products().GetProductsByIds(ctx, []string{first.Items[0].ProductID})
	require.NoError(t, err)
	require.Len(t, products, 1)

	require.NoError(t, s.Purchases().DeletePurchase(ctx, deleted.ID))

	start, end := day(1).Unix(), day(5).Unix()
	got, err := s.Purchases().ListPurchases(ctx, entity.DateRange{Start: &start, End: &end})
	require.NoError(t, err)

	var totals []entity.Amount
	for _, p := range got {
		totals = append(totals, p.TotalValue)
	}
	// day 5 sits on the exclusive end bound
	assert.Equal(t, []entity.Amount{"1", "2"}, totals)

	all, err := s.Purchases().ListPurchases(ctx, entity.DateRange{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSalesCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sale, err := s.Sales().AddSale(ctx, &entity.SaleNew{
		Sale: &entity.SaleInsert{
			ClientName:   "Maria",
			Discount:     "10",
			DiscountType: entity.DiscountPercentage,
			TotalValue:   "45,00",
		},
		Items: []entity.LineItem{{ProductID: bson.NewObjectID().Hex(), UnitPrice: "50", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, s.Sales().UpdateSale(ctx, sale.ID, &entity.SaleInsert{
		ClientName:   "Maria Silva",
		DiscountType: entity.DiscountMoney,
		TotalValue:   "50",
	}))

	sales, err := s.Sales().ListSales(ctx, entity.DateRange{})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Maria Silva", sales[0].ClientName)
	assert.Equal(t, entity.DiscountMoney, sales[0].DiscountType)
	assert.Len(t, sales[0].Items, 1)

	require.NoError(t, s.Sales().DeleteSale(ctx, sale.ID))
	sales, err = s.Sales().ListSales(ctx, entity.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, sales)
}
