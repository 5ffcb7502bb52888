package mongostore

import (
	"testing"

	"github.com/jekabolt/stockroom/internal/entity"
	gerr "github.com/jekabolt/stockroom/internal/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestActiveFilter(t *testing.T) {
	start, end := int64(100), int64(200)

	tests := []struct {
		name string
		rng  entity.DateRange
		want bson.D
	}{
		{
			name: "unbounded",
			want: bson.D{{Key: "deletedAt", Value: nil}},
		},
		{
			name: "both bounds",
			rng:  entity.DateRange{Start: &start, End: &end},
			want: bson.D{
				{Key: "deletedAt", Value: nil},
				{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lt", Value: end}}},
			},
		},
		{
			name: "start only",
			rng:  entity.DateRange{Start: &start},
			want: bson.D{
				{Key: "deletedAt", Value: nil},
				{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: start}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, activeFilter(tt.rng))
		})
	}
}

func TestAmountOf(t *testing.T) {
	assert.Equal(t, entity.Amount("10,50"), amountOf("10,50"))
	assert.Equal(t, entity.Amount("20"), amountOf(int32(20)))
	assert.Equal(t, entity.Amount("12.5"), amountOf(12.5))
	assert.Equal(t, entity.Amount(""), amountOf(nil))

	// kept as text so the aggregation policy decides
	a := amountOf(true)
	assert.Equal(t, entity.Amount("true"), a)
	_, err := a.Decimal()
	assert.ErrorIs(t, err, gerr.ErrMalformedMonetaryValue)
}

func TestPurchaseDocEntity(t *testing.T) {
	deletedAt := int64(50)
	doc := purchaseDoc{
		ID:         bson.NewObjectID(),
		Locale:     "Main store",
		Date:       "2024-03-05",
		TotalValue: 30.0,
		ProductsPurchase: []lineDoc{
			{ID: "abc", UnitPrice: "15,00", Quantity: 2},
		},
		Stamps: timestampsDoc{CreatedAt: 10, UpdatedAt: 20, DeletedAt: &deletedAt},
	}

	p := doc.entity()
	assert.Equal(t, doc.ID.Hex(), p.ID)
	assert.Equal(t, entity.Amount("30"), p.TotalValue)
	assert.Equal(t, []entity.LineItem{{ProductID: "abc", UnitPrice: "15,00", Quantity: 2}}, p.Items)
	assert.Equal(t, int64(10), p.CreatedAt)
	assert.False(t, p.Active())
}

func TestObjectID(t *testing.T) {
	_, err := objectID("not-hex")
	assert.ErrorIs(t, err, gerr.ErrNotFound)

	oid := bson.NewObjectID()
	got, err := objectID(oid.Hex())
	assert.NoError(t, err)
	assert.Equal(t, oid, got)
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(&Config{Database: "stockroom"})
	assert.Error(t, err)
	_, err = New(&Config{URI: "mongodb://localhost:27017"})
	assert.Error(t, err)

	s, err := New(&Config{URI: "mongodb://localhost:27017", Database: "stockroom"})
	assert.NoError(t, err)
	assert.Nil(t, s.client)
	// closing a store that never dialled is a no-op
	s.Close()
}
