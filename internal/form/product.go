package form

import (
	"github.com/asaskevich/govalidator"
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/stockroom/internal/entity"
)

// ProductRequest is the body of product create and update calls.
type ProductRequest struct {
	entity.ProductInsert
}

func (r *ProductRequest) Validate() error {
	return validateProductInsert(&r.ProductInsert)
}

func validateProductInsert(prd *entity.ProductInsert) error {
	if _, err := govalidator.ValidateStruct(prd); err != nil {
		return &ValidationError{Violations: []string{formatErrMsg(err.Error())}}
	}
	return ValidateStruct(prd,
		v.Field(&prd.Code, v.Length(1, 255)),
		v.Field(&prd.Name, v.Length(1, 255)),
		v.Field(&prd.Quantity, v.Required, v.Min(1)),
		v.Field(&prd.PurchaseValue, isAmount),
		v.Field(&prd.SaleValue, isAmount),
	)
}

var validProduct = v.By(func(value any) error {
	prd, ok := value.(entity.ProductInsert)
	if !ok {
		return &ValidationError{Violations: []string{"Must be a product."}}
	}
	return validateProductInsert(&prd)
})
