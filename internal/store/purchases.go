package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/entity"
)

type purchaseStore struct {
	*MYSQLStore
}

// Purchases returns an object implementing purchase interface
func (ms *MYSQLStore) Purchases() dependency.Purchases {
	return &purchaseStore{
		MYSQLStore: ms,
	}
}

// AddPurchase stores the purchased products, the purchase and its lines in one
// transaction. Each line takes the purchase value of its product as unit price.
func (ms *purchaseStore) AddPurchase(ctx context.Context, pn *entity.PurchaseNew) (*entity.Purchase, error) {
	var purchase *entity.Purchase
	err := ms.Tx(ctx, func(ctx context.Context, tx *MYSQLStore) error {
		ts := entity.NewTimestamps(tx.Now())

		products, err := insertProducts(ctx, tx, pn.Products, ts)
		if err != nil {
			return err
		}

		p := &entity.Purchase{
			ID:             uuid.NewString(),
			PurchaseInsert: *pn.Purchase,
			Items:          make([]entity.LineItem, 0, len(products)),
			Timestamps:     ts,
		}
		for _, prd := range products {
			p.Items = append(p.Items, entity.LineItem{
				ProductID: prd.ID,
				UnitPrice: prd.PurchaseValue,
				Quantity:  prd.Quantity,
			})
		}

		query := `
		INSERT INTO purchase (id, locale, purchase_date, total_value, created_at, updated_at)
		VALUES (:id, :locale, :date, :totalValue, :createdAt, :updatedAt)`
		err = ExecNamed(ctx, tx.DB(), query, map[string]any{
			"id":         p.ID,
			"locale":     p.Locale,
			"date":       p.Date,
			"totalValue": p.TotalValue.String(),
			"createdAt":  ts.CreatedAt,
			"updatedAt":  ts.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("can't insert purchase: %w", err)
		}

		if err := insertLineItems(ctx, tx, "purchase_item", "purchase_id", p.ID, p.Items); err != nil {
			return err
		}
		purchase = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (ms *purchaseStore) ListPurchases(ctx context.Context, rng entity.DateRange) ([]entity.Purchase, error) {
	where, params := activeRange(rng)
	query := fmt.Sprintf(`
	SELECT id, locale, purchase_date, total_value, created_at, updated_at, deleted_at
	FROM purchase
	WHERE %s
	ORDER BY created_at, seq`, where)

	purchases, err := QueryListNamed[entity.Purchase](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get purchases: %w", err)
	}

	ids := make([]string, 0, len(purchases))
	for _, p := range purchases {
		ids = append(ids, p.ID)
	}
	items, err := lineItemsByOwner(ctx, ms.MYSQLStore, "purchase_item", "purchase_id", ids)
	if err != nil {
		return nil, err
	}
	for i := range purchases {
		purchases[i].Items = items[purchases[i].ID]
	}
	return purchases, nil
}

func (ms *purchaseStore) UpdatePurchase(ctx context.Context, id string, pi *entity.PurchaseInsert) error {
	return ms.Tx(ctx, func(ctx context.Context, tx *MYSQLStore) error {
		if err := requireActive(ctx, tx.DB(), "purchase", id); err != nil {
			return err
		}
		query := `
		UPDATE purchase SET
			locale = :locale,
			purchase_date = :date,
			total_value = :totalValue,
			updated_at = :updatedAt
		WHERE id = :id`
		err := ExecNamed(ctx, tx.DB(), query, map[string]any{
			"id":         id,
			"locale":     pi.Locale,
			"date":       pi.Date,
			"totalValue": pi.TotalValue.String(),
			"updatedAt":  tx.Now().Unix(),
		})
		if err != nil {
			return fmt.Errorf("can't update purchase: %w", err)
		}
		return nil
	})
}

func (ms *purchaseStore) DeletePurchase(ctx context.Context, id string) error {
	return softDelete(ctx, ms.MYSQLStore, "purchase", id)
}
