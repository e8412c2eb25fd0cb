package domain

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount in the shop currency.
// It serialises as a bare JSON number so stored collections stay plain.
type Money struct {
	d decimal.Decimal
}

// NewMoney creates Money from whole currency units.
// Example: NewMoney(58999) represents ₹58,999.
func NewMoney(units int64) Money {
	return Money{d: decimal.NewFromInt(units)}
}

// NewMoneyFromDecimal wraps an existing decimal.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// ParseMoney parses a decimal string such as "1499.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{d: d}, nil
}

// MustParseMoney is ParseMoney for literals known to be valid.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{d: decimal.Zero}
}

// Decimal exposes the underlying value.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// Add adds two Money values.
func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

// Sub subtracts other from m.
func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

// Times multiplies m by an integer quantity.
func (m Money) Times(quantity int) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(int64(quantity)))}
}

// DivideBy divides by an integer count, rounded to two places.
// Dividing by zero yields zero.
func (m Money) DivideBy(n int) Money {
	if n == 0 {
		return Zero()
	}
	return Money{d: m.d.DivRound(decimal.NewFromInt(int64(n)), 2)}
}

// IsZero returns true if the money value is zero.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// IsNegative returns true if the money value is negative.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// IsPositive returns true if the money value is positive.
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// LessThan returns true if this Money value is less than another.
func (m Money) LessThan(other Money) bool {
	return m.d.LessThan(other.d)
}

// GreaterThan returns true if this Money value is greater than another.
func (m Money) GreaterThan(other Money) bool {
	return m.d.GreaterThan(other.d)
}

// Equals compares by value, so 10 and 10.00 are equal.
func (m Money) Equals(other Money) bool {
	return m.d.Equal(other.d)
}

// Float64 returns an approximate float64 representation (for display only, not calculations).
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// String formats with two decimal places.
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// Rupees formats with the Indian digit grouping used on the dashboard,
// e.g. ₹1,23,456.50. Whole amounts drop the paise.
func (m Money) Rupees() string {
	s := m.d.Abs().StringFixed(2)
	whole, paise := s[:len(s)-3], s[len(s)-2:]

	if len(whole) > 3 {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		whole = strings.Join(groups, ",") + "," + tail
	}

	out := "₹" + whole
	if paise != "00" {
		out += "." + paise
	}
	if m.d.IsNegative() {
		out = "-" + out
	}
	return out
}

// MarshalJSON writes the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		m.d = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid money amount %s: %w", data, err)
	}
	m.d = d
	return nil
}
