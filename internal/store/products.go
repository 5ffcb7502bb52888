package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/entity"
)

const productColumns = `id, code, name, color, quantity, size, purchase_value, sale_value, created_at, updated_at, deleted_at`

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing product interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

func productRow(id string, prd *entity.ProductInsert, ts entity.Timestamps) map[string]any {
	return map[string]any{
		"id":             id,
		"code":           prd.Code,
		"name":           prd.Name,
		"color":          prd.Color,
		"quantity":       prd.Quantity,
		"size":           prd.Size,
		"purchase_value": prd.PurchaseValue.String(),
		"sale_value":     prd.SaleValue.String(),
		"created_at":     ts.CreatedAt,
		"updated_at":     ts.UpdatedAt,
		"deleted_at":     ts.DeletedAt,
	}
}

var productInsertColumns = []string{
	"id", "code", "name", "color", "quantity", "size",
	"purchase_value", "sale_value", "created_at", "updated_at", "deleted_at",
}

func insertProducts(ctx context.Context, ms *MYSQLStore, prds []entity.ProductInsert, ts entity.Timestamps) ([]entity.Product, error) {
	rows := make([]map[string]any, 0, len(prds))
	products := make([]entity.Product, 0, len(prds))
	for i := range prds {
		id := uuid.NewString()
		rows = append(rows, productRow(id, &prds[i], ts))
		products = append(products, entity.Product{
			ID:            id,
			ProductInsert: prds[i],
			Timestamps:    ts,
		})
	}
	if err := BulkInsert(ctx, ms.DB(), "product", productInsertColumns, rows); err != nil {
		return nil, fmt.Errorf("can't insert products: %w", err)
	}
	return products, nil
}

func (ms *productStore) AddProduct(ctx context.Context, prd *entity.ProductInsert) (*entity.Product, error) {
	products, err := insertProducts(ctx, ms.MYSQLStore, []entity.ProductInsert{*prd}, entity.NewTimestamps(ms.Now()))
	if err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (ms *productStore) GetProducts(ctx context.Context) ([]entity.Product, error) {
	where, params := activeRange(entity.DateRange{})
	query := fmt.Sprintf(`SELECT %s FROM product WHERE %s ORDER BY created_at, seq`, productColumns, where)
	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	return products, nil
}

func (ms *productStore) GetProductsByIds(ctx context.Context, ids []string) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM product WHERE id IN (:ids) ORDER BY created_at, seq`, productColumns)
	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get products by ids: %w", err)
	}
	return products, nil
}

func (ms *productStore) UpdateProduct(ctx context.Context, id string, prd *entity.ProductInsert) error {
	return ms.Tx(ctx, func(ctx context.Context, tx *MYSQLStore) error {
		if err := requireActive(ctx, tx.DB(), "product", id); err != nil {
			return err
		}
		query := `
		UPDATE product SET
			code = :code,
			name = :name,
			color = :color,
			quantity = :quantity,
			size = :size,
			purchase_value = :purchase_value,
			sale_value = :sale_value,
			updated_at = :updated_at
		WHERE id = :id`
		params := productRow(id, prd, entity.Timestamps{UpdatedAt: tx.Now().Unix()})
		if err := ExecNamed(ctx, tx.DB(), query, params); err != nil {
			return fmt.Errorf("can't update product: %w", err)
		}
		return nil
	})
}

func (ms *productStore) DeleteProduct(ctx context.Context, id string) error {
	return softDelete(ctx, ms.MYSQLStore, "product", id)
}
