package entity

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary quantity that tolerates malformed input. Upstream
// data occasionally carries non-numeric or missing amounts; those decode as
// an invalid Amount whose value is zero, so aggregation never propagates a
// parse failure into a total.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount wraps a decimal value in a valid Amount.
func NewAmount(value decimal.Decimal) Amount {
	return Amount{Value: value, Valid: true}
}

// AmountFromString parses a decimal string into an Amount. Unparseable
// input yields an invalid Amount with a zero value.
func AmountFromString(raw string) Amount {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Amount{}
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}
	}
	return Amount{Value: value, Valid: true}
}

// OrZero returns the amount's value, or zero when the amount is invalid.
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

// MarshalJSON encodes the amount as a plain JSON number; invalid amounts
// encode as 0.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.OrZero().String()), nil
}

// UnmarshalJSON decodes a JSON number, a quoted decimal string, or null.
// Anything unparseable yields an invalid Amount rather than an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	*a = AmountFromString(raw)
	return nil
}
