package dto

import (
	"encoding/json"
	"testing"

	"github.com/jekabolt/stockroom/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEntityChartPoints(t *testing.T) {
	empty, err := json.Marshal(ConvertEntityChartPoints(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))

	points := ConvertEntityChartPoints([]entity.ChartPoint{{
		Day:       "05/03",
		Purchases: decimal.RequireFromString("10.50"),
		Sales:     decimal.RequireFromString("20.00"),
		Revenue:   decimal.RequireFromString("9.50"),
	}})
	b, err := json.Marshal(points)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"day":"05/03","purchases":10.5,"sales":20,"revenue":9.5}]`, string(b))
}

func TestConvertEntityPurchase(t *testing.T) {
	products := IndexProducts([]entity.Product{{
		ID:            "prd-1",
		ProductInsert: entity.ProductInsert{Code: "C1", Name: "Shirt", Quantity: 2, PurchaseValue: "10,00"},
	}})

	p := &entity.Purchase{
		ID:             "pur-1",
		PurchaseInsert: entity.PurchaseInsert{Locale: "Main store", Date: "2024-03-05", TotalValue: "20,00"},
		Items: []entity.LineItem{
			{ProductID: "prd-1", UnitPrice: "10,00", Quantity: 2},
			{ProductID: "gone", UnitPrice: "1", Quantity: 1},
		},
		Timestamps: entity.Timestamps{CreatedAt: 100, UpdatedAt: 100},
	}

	b, err := json.Marshal(ConvertEntityPurchase(p, products))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "pur-1", got["_id"])
	assert.Equal(t, "Main store", got["locale"])
	assert.Equal(t, "20,00", got["totalValue"])
	assert.Nil(t, got["deletedAt"])

	lines := got["productsPurchase"].([]any)
	require.Len(t, lines, 2)
	first := lines[0].(map[string]any)
	assert.Equal(t, "prd-1", first["id"])
	assert.Equal(t, "Shirt", first["product"].(map[string]any)["name"])
	assert.NotContains(t, lines[1].(map[string]any), "product")
}

func TestLineItemProductIds(t *testing.T) {
	ids := LineItemProductIds(
		[]entity.LineItem{{ProductID: "b"}, {ProductID: "a"}},
		[]entity.LineItem{{ProductID: "a"}, {ProductID: "c"}},
	)
	assert.Equal(t, []string{"b", "a", "c"}, ids)
	assert.Empty(t, LineItemProductIds())
}
