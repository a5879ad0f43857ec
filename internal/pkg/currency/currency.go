package currency

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type Code string

const (
	INR Code = "INR"
	USD Code = "USD"
)

var symbols = map[Code]string{
	INR: "₹",
	USD: "$",
}

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidPrice    = errors.New("invalid price")
)

// Parse normalises a currency code; an empty code yields def.
func Parse(code string, def Code) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return def, nil
	}
	c := Code(code)
	if _, ok := symbols[c]; !ok {
		return "", ErrUnknownCurrency
	}
	return c, nil
}

func (c Code) Valid() bool {
	_, ok := symbols[c]
	return ok
}

func (c Code) Symbol() string {
	return symbols[c]
}

// ParsePrice strips currency symbols, thousands separators and spaces:
// "₹34,500" -> 34500.
func ParsePrice(s string) (float64, error) {
	r := strings.NewReplacer("₹", "", "$", "", ",", "", " ", "", " ", "")
	cleaned := r.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, ErrInvalidPrice
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidPrice
	}
	return v, nil
}

// Format renders a whole-unit amount with en-IN digit grouping,
// e.g. 1234567 INR -> "₹12,34,567".
func Format(amount float64, c Code) string {
	if !c.Valid() {
		c = INR
	}
	rounded := int64(math.Round(amount))
	neg := rounded < 0
	if neg {
		rounded = -rounded
	}
	out := c.Symbol() + groupIndian(strconv.FormatInt(rounded, 10))
	if neg {
		return "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
