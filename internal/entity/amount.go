package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	gerr "github.com/jekabolt/stockroom/internal/errors"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value as it was entered: either a plain number or a
// decimal string using comma or dot separators ("10,50", "1.234,56", "10.5").
type Amount string

var amountNoise = strings.NewReplacer("R$", "", " ", "", "\u00a0", "")

// Decimal coerces the amount into a decimal. Empty amounts are zero.
func (a Amount) Decimal() (decimal.Decimal, error) {
	s := amountNoise.Replace(strings.TrimSpace(string(a)))
	if s == "" {
		return decimal.Zero, nil
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma > lastDot:
		// 1.234,56
		if strings.Count(s, ",") > 1 {
			return decimal.Zero, a.malformed()
		}
		s = strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
	case lastComma >= 0:
		// 1,234.56
		if strings.Count(s, ".") > 1 {
			return decimal.Zero, a.malformed()
		}
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ".") > 1:
		// 1.234.567
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, a.malformed()
	}
	return d, nil
}

func (a Amount) malformed() error {
	return fmt.Errorf("%w: %q", gerr.ErrMalformedMonetaryValue, string(a))
}

func (a Amount) String() string {
	return string(a)
}

// UnmarshalJSON accepts both JSON strings and numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// AmountFromAny converts a loosely typed document value into an Amount.
func AmountFromAny(v any) (Amount, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return Amount(t), nil
	case float64:
		return Amount(strconv.FormatFloat(t, 'f', -1, 64)), nil
	case float32:
		return Amount(strconv.FormatFloat(float64(t), 'f', -1, 32)), nil
	case int:
		return Amount(strconv.Itoa(t)), nil
	case int32:
		return Amount(strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return Amount(strconv.FormatInt(t, 10)), nil
	case fmt.Stringer:
		return Amount(t.String()), nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", gerr.ErrMalformedMonetaryValue, v)
	}
}
