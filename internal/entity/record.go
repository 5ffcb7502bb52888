package entity

import "time"

// Timestamps are unix seconds. DeletedAt stays nil while the record is active,
// once set the record is excluded from listings and aggregation for good.
type Timestamps struct {
	CreatedAt int64  `db:"created_at" json:"createdAt"`
	UpdatedAt int64  `db:"updated_at" json:"updatedAt"`
	DeletedAt *int64 `db:"deleted_at" json:"deletedAt"`
}

func NewTimestamps(now time.Time) Timestamps {
	ts := now.Unix()
	return Timestamps{
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func (t Timestamps) Active() bool {
	return t.DeletedAt == nil
}

// LineItem references a product from a purchase or a sale.
type LineItem struct {
	ProductID string `db:"product_id" json:"id" valid:"required"`
	UnitPrice Amount `db:"unit_price" json:"unitPrice"`
	Quantity  int    `db:"quantity" json:"quantity"`
}

// MonetaryRecord is the part of a purchase or a sale the dashboard aggregates.
type MonetaryRecord struct {
	ID         string
	TotalValue Amount
	Timestamps
}
