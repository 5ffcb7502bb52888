package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/stockroom/internal/entity"
)

// AddPurchaseRequest carries the purchase header and the products it brings in.
type AddPurchaseRequest struct {
	entity.PurchaseInsert
	Products []entity.ProductInsert `json:"products"`
}

func (r *AddPurchaseRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.PurchaseInsert.Locale, v.Required),
		v.Field(&r.PurchaseInsert.Date, v.Required),
		v.Field(&r.PurchaseInsert.TotalValue, isAmount),
		v.Field(&r.Products, v.Required, v.Each(validProduct)),
	)
}

func (r *AddPurchaseRequest) ToEntity() *entity.PurchaseNew {
	pi := r.PurchaseInsert
	return &entity.PurchaseNew{
		Purchase: &pi,
		Products: r.Products,
	}
}

type UpdatePurchaseRequest struct {
	entity.PurchaseInsert
}

func (r *UpdatePurchaseRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.PurchaseInsert.Locale, v.Required),
		v.Field(&r.PurchaseInsert.Date, v.Required),
		v.Field(&r.PurchaseInsert.TotalValue, isAmount),
	)
}
