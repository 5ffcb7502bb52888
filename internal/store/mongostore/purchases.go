package mongostore

import (
	"context"
	"fmt"

	"github.com/jekabolt/stockroom/internal/entity"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type purchaseStore struct {
	*Store
}

// AddPurchase inserts every purchased product first, the purchase lines point
// to them and take their purchase value as unit price.
func (ps *purchaseStore) AddPurchase(ctx context.Context, pn *entity.PurchaseNew) (*entity.Purchase, error) {
	products, err := ps.collection(collectionProducts)
	if err != nil {
		return nil, err
	}
	purchases, err := ps.collection(collectionPurchases)
	if err != nil {
		return nil, err
	}

	ts := entity.NewTimestamps(ps.Now())

	items := make([]entity.LineItem, 0, len(pn.Products))
	if len(pn.Products) > 0 {
		docs := make([]any, 0, len(pn.Products))
		for i := range pn.Products {
			doc := newProductDoc(&pn.Products[i], ts)
			docs = append(docs, doc)
			items = append(items, entity.LineItem{
				ProductID: doc.ID.Hex(),
				UnitPrice: pn.Products[i].PurchaseValue,
				Quantity:  pn.Products[i].Quantity,
			})
		}
		if _, err := products.InsertMany(ctx, docs); err != nil {
			return nil, fmt.Errorf("insert purchased products: %w", err)
		}
	}

	doc := purchaseDoc{
		ID:               bson.NewObjectID(),
		Locale:           pn.Purchase.Locale,
		Date:             pn.Purchase.Date,
		TotalValue:       pn.Purchase.TotalValue.String(),
		ProductsPurchase: newLineDocs(items),
		Stamps:           newTimestampsDoc(ts),
	}
	if _, err := purchases.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert purchase: %w", err)
	}
	p := doc.entity()
	return &p, nil
}

func (ps *purchaseStore) ListPurchases(ctx context.Context, rng entity.DateRange) ([]entity.Purchase, error) {
	coll, err := ps.collection(collectionPurchases)
	if err != nil {
		return nil, err
	}
	docs, err := findAll[purchaseDoc](ctx, coll, activeFilter(rng))
	if err != nil {
		return nil, err
	}
	res := make([]entity.Purchase, 0, len(docs))
	for i := range docs {
		res = append(res, docs[i].entity())
	}
	return res, nil
}

func (ps *purchaseStore) UpdatePurchase(ctx context.Context, id string, pi *entity.PurchaseInsert) error {
	coll, err := ps.collection(collectionPurchases)
	if err != nil {
		return err
	}
	return setActive(ctx, coll, id, bson.D{
		{Key: "locale", Value: pi.Locale},
		{Key: "date", Value: pi.Date},
		{Key: "totalValue", Value: pi.TotalValue.String()},
		{Key: "updatedAt", Value: ps.Now().Unix()},
	})
}

func (ps *purchaseStore) DeletePurchase(ctx context.Context, id string) error {
	coll, err := ps.collection(collectionPurchases)
	if err != nil {
		return err
	}
	return softDelete(ctx, coll, id, ps.Now().Unix())
}
