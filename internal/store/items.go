package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/stockroom/internal/entity"
)

// lineItemRow is a purchase_item or sale_item row with its owner id.
type lineItemRow struct {
	OwnerID string `db:"owner_id"`
	entity.LineItem
}

var lineItemColumns = []string{"owner_id", "product_id", "unit_price", "quantity"}

func insertLineItems(ctx context.Context, ms *MYSQLStore, table, ownerColumn, ownerID string, items []entity.LineItem) error {
	rows := make([]map[string]any, 0, len(items))
	for _, i := range items {
		rows = append(rows, map[string]any{
			ownerColumn:  ownerID,
			"product_id": i.ProductID,
			"unit_price": i.UnitPrice.String(),
			"quantity":   i.Quantity,
		})
	}
	columns := append([]string{ownerColumn}, lineItemColumns[1:]...)
	if err := BulkInsert(ctx, ms.DB(), table, columns, rows); err != nil {
		return fmt.Errorf("can't insert %s: %w", table, err)
	}
	return nil
}

// lineItemsByOwner loads the items of every owner in ids, keeping insertion order.
func lineItemsByOwner(ctx context.Context, ms *MYSQLStore, table, ownerColumn string, ids []string) (map[string][]entity.LineItem, error) {
	res := make(map[string][]entity.LineItem, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	query := fmt.Sprintf(`
	SELECT %s AS owner_id, product_id, unit_price, quantity
	FROM %s
	WHERE %s IN (:ids)
	ORDER BY id`, ownerColumn, table, ownerColumn)

	rows, err := QueryListNamed[lineItemRow](ctx, ms.DB(), query, map[string]any{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("can't get %s: %w", table, err)
	}
	for _, r := range rows {
		res[r.OwnerID] = append(res[r.OwnerID], r.LineItem)
	}
	return res, nil
}
