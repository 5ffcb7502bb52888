package mongostore

import (
	"context"
	"fmt"

	"github.com/jekabolt/stockroom/internal/entity"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type saleStore struct {
	*Store
}

func (ss *saleStore) AddSale(ctx context.Context, sn *entity.SaleNew) (*entity.Sale, error) {
	coll, err := ss.collection(collectionSales)
	if err != nil {
		return nil, err
	}
	doc := saleDoc{
		ID:           bson.NewObjectID(),
		ClientName:   sn.Sale.ClientName,
		Discount:     sn.Sale.Discount.String(),
		DiscountType: string(sn.Sale.DiscountType),
		TotalValue:   sn.Sale.TotalValue.String(),
		ProductsSale: newLineDocs(sn.Items),
		Stamps:       newTimestampsDoc(entity.NewTimestamps(ss.Now())),
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}
	s := doc.entity()
	return &s, nil
}

func (ss *saleStore) ListSales(ctx context.Context, rng entity.DateRange) ([]entity.Sale, error) {
	coll, err := ss.collection(collectionSales)
	if err != nil {
		return nil, err
	}
	docs, err := findAll[saleDoc](ctx, coll, activeFilter(rng))
	if err != nil {
		return nil, err
	}
	res := make([]entity.Sale, 0, len(docs))
	for i := range docs {
		res = append(res, docs[i].entity())
	}
	return res, nil
}

func (ss *saleStore) UpdateSale(ctx context.Context, id string, si *entity.SaleInsert) error {
	coll, err := ss.collection(collectionSales)
	if err != nil {
		return err
	}
	return setActive(ctx, coll, id, bson.D{
		{Key: "clientName", Value: si.ClientName},
		{Key: "discount", Value: si.Discount.String()},
		{Key: "discountType", Value: string(si.DiscountType)},
		{Key: "totalValue", Value: si.TotalValue.String()},
		{Key: "updatedAt", Value: ss.Now().Unix()},
	})
}

func (ss *saleStore) DeleteSale(ctx context.Context, id string) error {
	coll, err := ss.collection(collectionSales)
	if err != nil {
		return err
	}
	return softDelete(ctx, coll, id, ss.Now().Unix())
}
