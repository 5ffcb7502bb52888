package mongostore

import (
	"context"
	"fmt"

	"github.com/jekabolt/stockroom/internal/entity"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type productStore struct {
	*Store
}

func (ps *productStore) AddProduct(ctx context.Context, prd *entity.ProductInsert) (*entity.Product, error) {
	coll, err := ps.collection(collectionProducts)
	if err != nil {
		return nil, err
	}
	doc := newProductDoc(prd, entity.NewTimestamps(ps.Now()))
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	p := doc.entity()
	return &p, nil
}

func (ps *productStore) GetProducts(ctx context.Context) ([]entity.Product, error) {
	coll, err := ps.collection(collectionProducts)
	if err != nil {
		return nil, err
	}
	docs, err := findAll[productDoc](ctx, coll, activeFilter(entity.DateRange{}))
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].entity())
	}
	return products, nil
}

// GetProductsByIds skips ids that are not object ids, they can't match anything.
func (ps *productStore) GetProductsByIds(ctx context.Context, ids []string) ([]entity.Product, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := bson.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []entity.Product{}, nil
	}

	coll, err := ps.collection(collectionProducts)
	if err != nil {
		return nil, err
	}
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}
	docs, err := findAll[productDoc](ctx, coll, filter)
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].entity())
	}
	return products, nil
}

func (ps *productStore) UpdateProduct(ctx context.Context, id string, prd *entity.ProductInsert) error {
	coll, err := ps.collection(collectionProducts)
	if err != nil {
		return err
	}
	return setActive(ctx, coll, id, bson.D{
		{Key: "code", Value: prd.Code},
		{Key: "name", Value: prd.Name},
		{Key: "color", Value: prd.Color},
		{Key: "quantity", Value: prd.Quantity},
		{Key: "size", Value: prd.Size},
		{Key: "purchaseValue", Value: prd.PurchaseValue.String()},
		{Key: "saleValue", Value: prd.SaleValue.String()},
		{Key: "updatedAt", Value: ps.Now().Unix()},
	})
}

func (ps *productStore) DeleteProduct(ctx context.Context, id string) error {
	coll, err := ps.collection(collectionProducts)
	if err != nil {
		return err
	}
	return softDelete(ctx, coll, id, ps.Now().Unix())
}
