package entity

// PurchaseNew is a purchase together with the products it brings into stock.
type PurchaseNew struct {
	Purchase *PurchaseInsert `valid:"required"`
	Products []ProductInsert `valid:"required"`
}

type Purchase struct {
	ID string `db:"id"`
	PurchaseInsert
	Items []LineItem `db:"-"`
	Timestamps
}

type PurchaseInsert struct {
	Locale     string `db:"locale" json:"locale" valid:"required"`
	Date       string `db:"purchase_date" json:"date" valid:"required"`
	TotalValue Amount `db:"total_value" json:"totalValue"`
}

func (p *Purchase) Monetary() MonetaryRecord {
	return MonetaryRecord{
		ID:         p.ID,
		TotalValue: p.TotalValue,
		Timestamps: p.Timestamps,
	}
}
