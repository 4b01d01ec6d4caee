// Package orders is a small domain used to exercise field, feature, and collection
// matchers against realistic values.
package orders

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errBadQuantity = errors.New("bad quantity")
	errEmptySKU    = errors.New("empty sku")
)

// Line is one item of an order.
type Line struct {
	SKU      string
	Quantity int
}

// Order is a customer order.
type Order struct {
	ID       string
	Customer string
	Lines    []Line
	Tags     map[string]string
}

// Total returns the number of units across all lines.
func (o Order) Total() int {
	total := 0
	for _, line := range o.Lines {
		total += line.Quantity
	}

	return total
}

// ParseLine parses "SKU xQTY", e.g. "pen x3".
func ParseLine(text string) (Line, error) {
	sku, quantity, found := strings.Cut(text, " x")
	if sku == "" {
		return Line{}, errEmptySKU
	}

	if !found {
		return Line{SKU: sku, Quantity: 1}, nil
	}

	n, err := strconv.Atoi(quantity)
	if err != nil {
		return Line{}, fmt.Errorf("%w: %s", errBadQuantity, quantity)
	}

	return Line{SKU: sku, Quantity: n}, nil
}
