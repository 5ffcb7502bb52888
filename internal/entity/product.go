package entity

type Product struct {
	ID string `db:"id" json:"_id"`
	ProductInsert
	Timestamps
}

type ProductInsert struct {
	Code          string `db:"code" json:"code" valid:"required"`
	Name          string `db:"name" json:"name" valid:"required"`
	Color         string `db:"color" json:"color" valid:"required"`
	Quantity      int    `db:"quantity" json:"quantity" valid:"required"`
	Size          string `db:"size" json:"size" valid:"required"`
	PurchaseValue Amount `db:"purchase_value" json:"purchaseValue" valid:"required"`
	SaleValue     Amount `db:"sale_value" json:"saleValue" valid:"required"`
}
