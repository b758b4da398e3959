package model

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative currency value stored as DECIMAL(10,2).
// It always marshals as a string with exactly two decimal places,
// e.g. "1500.00", so money never round-trips through a float.
type Amount struct {
	decimal.Decimal
}

var ErrInvalidAmount = errors.New("invalid amount")

func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{d.Round(2)}, nil
}

func (a Amount) String() string {
	return a.StringFixed(2)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.StringFixed(2))
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	parsed, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
