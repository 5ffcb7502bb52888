package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/stockroom/internal/entity"
)

type SaleRequest struct {
	entity.SaleInsert
}

func (r *SaleRequest) Validate() error {
	return ValidateStruct(r, saleRules(&r.SaleInsert)...)
}

// Normalize fills the discount type the register uses when none is sent.
func (r *SaleRequest) Normalize() {
	if r.DiscountType == "" {
		r.DiscountType = entity.DiscountPercentage
	}
}

func saleRules(si *entity.SaleInsert) []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&si.ClientName, v.Required, v.Length(1, 255)),
		v.Field(&si.Discount, isAmount),
		v.Field(&si.DiscountType, v.In(entity.DiscountPercentage, entity.DiscountMoney)),
		v.Field(&si.TotalValue, isAmount),
	}
}

// AddSaleRequest is a sale with the lines sold.
type AddSaleRequest struct {
	SaleRequest
	Items []entity.LineItem `json:"productsSale"`
}

func (r *AddSaleRequest) Validate() error {
	if err := r.SaleRequest.Validate(); err != nil {
		return err
	}
	return ValidateStruct(r,
		v.Field(&r.Items, v.Required, v.Each(validLineItem)),
	)
}

func (r *AddSaleRequest) ToEntity() *entity.SaleNew {
	r.Normalize()
	si := r.SaleInsert
	return &entity.SaleNew{
		Sale:  &si,
		Items: r.Items,
	}
}

var validLineItem = v.By(func(value any) error {
	li, ok := value.(entity.LineItem)
	if !ok {
		return &ValidationError{Violations: []string{"Must be a sale line."}}
	}
	return ValidateStruct(&li,
		v.Field(&li.ProductID, v.Required),
		v.Field(&li.UnitPrice, isAmount),
		v.Field(&li.Quantity, v.Required, v.Min(1)),
	)
})
