package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/entity"
)

type saleStore struct {
	*MYSQLStore
}

// Sales returns an object implementing sale interface
func (ms *MYSQLStore) Sales() dependency.Sales {
	return &saleStore{
		MYSQLStore: ms,
	}
}

func saleParams(id string, si *entity.SaleInsert) map[string]any {
	return map[string]any{
		"id":           id,
		"clientName":   si.ClientName,
		"discount":     si.Discount.String(),
		"discountType": string(si.DiscountType),
		"totalValue":   si.TotalValue.String(),
	}
}

func (ms *saleStore) AddSale(ctx context.Context, sn *entity.SaleNew) (*entity.Sale, error) {
	var sale *entity.Sale
	err := ms.Tx(ctx, func(ctx context.Context, tx *MYSQLStore) error {
		s := &entity.Sale{
			ID:         uuid.NewString(),
			SaleInsert: *sn.Sale,
			Items:      sn.Items,
			Timestamps: entity.NewTimestamps(tx.Now()),
		}

		query := `
		INSERT INTO sale (id, client_name, discount, discount_type, total_value, created_at, updated_at)
		VALUES (:id, :clientName, :discount, :discountType, :totalValue, :createdAt, :updatedAt)`
		params := saleParams(s.ID, &s.SaleInsert)
		params["createdAt"] = s.CreatedAt
		params["updatedAt"] = s.UpdatedAt
		if err := ExecNamed(ctx, tx.DB(), query, params); err != nil {
			return fmt.Errorf("can't insert sale: %w", err)
		}

		if err := insertLineItems(ctx, tx, "sale_item", "sale_id", s.ID, s.Items); err != nil {
			return err
		}
		sale = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (ms *saleStore) ListSales(ctx context.Context, rng entity.DateRange) ([]entity.Sale, error) {
	where, params := activeRange(rng)
	query := fmt.Sprintf(`
	SELECT id, client_name, discount, discount_type, total_value, created_at, updated_at, deleted_at
	FROM sale
	WHERE %s
	ORDER BY created_at, seq`, where)

	sales, err := QueryListNamed[entity.Sale](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get sales: %w", err)
	}

	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	items, err := lineItemsByOwner(ctx, ms.MYSQLStore, "sale_item", "sale_id", ids)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Items = items[sales[i].ID]
	}
	return sales, nil
}

func (ms *saleStore) UpdateSale(ctx context.Context, id string, si *entity.SaleInsert) error {
	return ms.Tx(ctx, func(ctx context.Context, tx *MYSQLStore) error {
		if err := requireActive(ctx, tx.DB(), "sale", id); err != nil {
			return err
		}
		query := `
		UPDATE sale SET
			client_name = :clientName,
			discount = :discount,
			discount_type = :discountType,
			total_value = :totalValue,
			updated_at = :updatedAt
		WHERE id = :id`
		params := saleParams(id, si)
		params["updatedAt"] = tx.Now().Unix()
		if err := ExecNamed(ctx, tx.DB(), query, params); err != nil {
			return fmt.Errorf("can't update sale: %w", err)
		}
		return nil
	})
}

func (ms *saleStore) DeleteSale(ctx context.Context, id string) error {
	return softDelete(ctx, ms.MYSQLStore, "sale", id)
}
