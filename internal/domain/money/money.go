package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid decimal amount")
	ErrTooManyDecimal = errors.New("amount has more than two decimal places")
)

// Money is an amount in the hotel's single currency, held as integer cents
// so that rate × nights is exact.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// FromDecimal parses "100", "99.5" or "100.00".
func FromDecimal(value string) (Money, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Money{}, ErrInvalidAmount
	}

	negative := strings.HasPrefix(value, "-")
	value = strings.TrimPrefix(strings.TrimPrefix(value, "-"), "+")

	whole, frac, hasFrac := strings.Cut(value, ".")
	if whole == "" || (hasFrac && frac == "") {
		return Money{}, ErrInvalidAmount
	}
	if !startsWithDigit(whole) || (hasFrac && !startsWithDigit(frac)) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	if len(frac) > 2 {
		return Money{}, ErrTooManyDecimal
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	total := units*100 + cents
	if negative {
		total = -total
	}
	return Money{cents: total}, nil
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func (m Money) Cents() int64 {
	return m.cents
}

// Amount returns the value in currency units, for rendering only.
func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Mul(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) String() string {
	sign := ""
	cents := m.cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
