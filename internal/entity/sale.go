package entity

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountMoney      DiscountType = "money"
)

type SaleNew struct {
	Sale  *SaleInsert `valid:"required"`
	Items []LineItem  `valid:"required"`
}

type Sale struct {
	ID string `db:"id"`
	SaleInsert
	Items []LineItem `db:"-"`
	Timestamps
}

type SaleInsert struct {
	ClientName   string       `db:"client_name" json:"clientName" valid:"required"`
	Discount     Amount       `db:"discount" json:"discount"`
	DiscountType DiscountType `db:"discount_type" json:"discountType"`
	TotalValue   Amount       `db:"total_value" json:"totalValue"`
}

func (s *Sale) Monetary() MonetaryRecord {
	return MonetaryRecord{
		ID:         s.ID,
		TotalValue: s.TotalValue,
		Timestamps: s.Timestamps,
	}
}
