package mongostore

import (
	"fmt"

	"github.com/jekabolt/stockroom/internal/entity"
	gerr "github.com/jekabolt/stockroom/internal/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Monetary fields are decoded into any: older documents hold them as numbers,
// newer ones as the text the user typed.

type timestampsDoc struct {
	CreatedAt int64  `bson:"createdAt"`
	UpdatedAt int64  `bson:"updatedAt"`
	DeletedAt *int64 `bson:"deletedAt"`
}

type productDoc struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Code          string        `bson:"code"`
	Name          string        `bson:"name"`
	Color         string        `bson:"color"`
	Quantity      int           `bson:"quantity"`
	Size          string        `bson:"size"`
	PurchaseValue any           `bson:"purchaseValue"`
	SaleValue     any           `bson:"saleValue"`
	Stamps        timestampsDoc `bson:",inline"`
}

type lineDoc struct {
	ID        string `bson:"id"`
	UnitPrice any    `bson:"unitPrice"`
	Quantity  int    `bson:"quantity"`
}

type purchaseDoc struct {
	ID               bson.ObjectID `bson:"_id,omitempty"`
	Locale           string        `bson:"locale"`
	Date             string        `bson:"date"`
	TotalValue       any           `bson:"totalValue"`
	ProductsPurchase []lineDoc     `bson:"productsPurchase"`
	Stamps           timestampsDoc `bson:",inline"`
}

type saleDoc struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	ClientName    string        `bson:"clientName"`
	Discount      any           `bson:"discount"`
	DiscountType  string        `bson:"discountType"`
	TotalValue    any           `bson:"totalValue"`
	ProductsSale  []lineDoc     `bson:"productsSale"`
	Stamps        timestampsDoc `bson:",inline"`
}

// amountOf never fails: a value of an unexpected type is kept as its text and
// left for the caller to reject or tolerate.
func amountOf(v any) entity.Amount {
	a, err := entity.AmountFromAny(v)
	if err != nil {
		return entity.Amount(fmt.Sprint(v))
	}
	return a
}

func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: bad id %q", gerr.ErrNotFound, id)
	}
	return oid, nil
}

func (d timestampsDoc) entity() entity.Timestamps {
	return entity.Timestamps{
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		DeletedAt: d.DeletedAt,
	}
}

func newTimestampsDoc(ts entity.Timestamps) timestampsDoc {
	return timestampsDoc{
		CreatedAt: ts.CreatedAt,
		UpdatedAt: ts.UpdatedAt,
		DeletedAt: ts.DeletedAt,
	}
}

func newProductDoc(prd *entity.ProductInsert, ts entity.Timestamps) productDoc {
	return productDoc{
		ID:            bson.NewObjectID(),
		Code:          prd.Code,
		Name:          prd.Name,
		Color:         prd.Color,
		Quantity:      prd.Quantity,
		Size:          prd.Size,
		PurchaseValue: prd.PurchaseValue.String(),
		SaleValue:     prd.SaleValue.String(),
		Stamps:        newTimestampsDoc(ts),
	}
}

func (d *productDoc) entity() entity.Product {
	return entity.Product{
		ID: d.ID.Hex(),
		ProductInsert: entity.ProductInsert{
			Code:          d.Code,
			Name:          d.Name,
			Color:         d.Color,
			Quantity:      d.Quantity,
			Size:          d.Size,
			PurchaseValue: amountOf(d.PurchaseValue),
			SaleValue:     amountOf(d.SaleValue),
		},
		Timestamps: d.Stamps.entity(),
	}
}

func newLineDocs(items []entity.LineItem) []lineDoc {
	docs := make([]lineDoc, 0, len(items))
	for _, i := range items {
		docs = append(docs, lineDoc{
			ID:        i.ProductID,
			UnitPrice: i.UnitPrice.String(),
			Quantity:  i.Quantity,
		})
	}
	return docs
}

func lineItems(docs []lineDoc) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, entity.LineItem{
			ProductID: d.ID,
			UnitPrice: amountOf(d.UnitPrice),
			Quantity:  d.Quantity,
		})
	}
	return items
}

func (d *purchaseDoc) entity() entity.Purchase {
	return entity.Purchase{
		ID: d.ID.Hex(),
		PurchaseInsert: entity.PurchaseInsert{
			Locale:     d.Locale,
			Date:       d.Date,
			TotalValue: amountOf(d.TotalValue),
		},
		Items:      lineItems(d.ProductsPurchase),
		Timestamps: d.Stamps.entity(),
	}
}

func (d *saleDoc) entity() entity.Sale {
	return entity.Sale{
		ID: d.ID.Hex(),
		SaleInsert: entity.SaleInsert{
			ClientName:   d.ClientName,
			Discount:     amountOf(d.Discount),
			DiscountType: entity.DiscountType(d.DiscountType),
			TotalValue:   amountOf(d.TotalValue),
		},
		Items:      lineItems(d.ProductsSale),
		Timestamps: d.Stamps.entity(),
	}
}
