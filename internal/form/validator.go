// Package form validates the request bodies of the inventory API.
package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/stockroom/internal/entity"
)

// ValidationError lists the field violations of a request.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, " ")
}

// ValidateStruct runs ozzo rules against structPtr and flattens the outcome into
// a ValidationError with one sorted line per field.
func ValidateStruct(structPtr any, rules ...*v.FieldRules) error {
	err := v.ValidateStruct(structPtr, rules...)
	if err == nil {
		return nil
	}
	var errs v.Errors
	if !errors.As(err, &errs) {
		return err
	}

	ve := &ValidationError{}
	flatten("", errs, ve)
	sort.Strings(ve.Violations)
	return ve
}

func flatten(prefix string, errs v.Errors, ve *ValidationError) {
	for field, err := range errs {
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}
		var nested v.Errors
		if errors.As(err, &nested) {
			flatten(name, nested, ve)
			continue
		}
		var inner *ValidationError
		if errors.As(err, &inner) {
			for _, msg := range inner.Violations {
				ve.Violations = append(ve.Violations, name+"."+msg)
			}
			continue
		}
		ve.Violations = append(ve.Violations, formatErrMsg(name+": "+err.Error()))
	}
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, r := range str {
		return string(unicode.ToUpper(r)) + str[i+utf8.RuneLen(r):]
	}
	return ""
}

// isAmount accepts empty values, Required decides whether they are allowed.
var isAmount = v.By(func(value any) error {
	a, ok := value.(entity.Amount)
	if !ok {
		return fmt.Errorf("must be a monetary value")
	}
	if _, err := a.Decimal(); err != nil {
		return fmt.Errorf("must be a number like 10,50 or 10.50")
	}
	return nil
})
