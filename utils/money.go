package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a decimal amount that unmarshals from either a JSON number or a
// numeric string ("100.00"), matching what storefront clients actually send.
type Money float64

// UnmarshalJSON implements json.Unmarshaler
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return fmt.Errorf("amount is empty")
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", str)
		}
		*m = Money(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("invalid amount %s", s)
	}
	*m = Money(f)
	return nil
}

// Float64 returns the amount as a plain float
func (m Money) Float64() float64 {
	return float64(m)
}

// ToPaise converts a rupee amount to integer minor units for the gateway
func ToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FormatINR renders an amount for JSON responses, two decimals with ₹ prefix
func FormatINR(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}
