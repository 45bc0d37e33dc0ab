package util

import (
	"fmt"
	"strings"
	"time"
)

// ValidatePrice checks that a price is positive and below a sanity ceiling.
func ValidatePrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("price must be positive, got %f", price)
	}
	if price >= 10000000 {
		return fmt.Errorf("price too large, got %f", price)
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD layout.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateSKU checks that a SKU is present, of reasonable length and usable
// as a key segment in the store tree. A slash would nest the index entry
// under another SKU's node, and the database forbids . # $ [ ] in keys.
func ValidateSKU(sku string) error {
	if sku == "" {
		return fmt.Errorf("sku is empty")
	}
	if len(sku) > 64 {
		return fmt.Errorf("sku too long, max 64 characters")
	}
	if strings.ContainsAny(sku, "/.#$[]") {
		return fmt.Errorf("sku contains reserved characters")
	}
	return nil
}
