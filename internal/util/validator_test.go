package util

import (
	"testing"
)

func TestValidatePrice_Positive(t *testing.T) {
	testCases := []float64{0.01, 1.0, 100.5, 9999999.99}

	for _, price := range testCases {
		err := ValidatePrice(price)
		if err != nil {
			t.Errorf("ValidatePrice(%f) error = %v, want nil", price, err)
		}
	}
}

func TestValidatePrice_Zero(t *testing.T) {
	err := ValidatePrice(0)

	if err == nil {
		t.Error("ValidatePrice(0) error = nil, want error")
	}
}

func TestValidatePrice_Negative(t *testing.T) {
	testCases := []float64{-0.01, -100, -9999.99}

	for _, price := range testCases {
		err := ValidatePrice(price)
		if err == nil {
			t.Errorf("ValidatePrice(%f) error = nil, want error", price)
		}
	}
}

func TestValidatePrice_TooLarge(t *testing.T) {
	err := ValidatePrice(100000000)

	if err == nil {
		t.Error("ValidatePrice(100000000) error = nil, want error")
	}
}

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateSKU_Valid(t *testing.T) {
	testCases := []string{"S1", "ABC-123", "7891000100103"}

	for _, sku := range testCases {
		err := ValidateSKU(sku)
		if err != nil {
			t.Errorf("ValidateSKU(%q) error = %v, want nil", sku, err)
		}
	}
}

func TestValidateSKU_Invalid(t *testing.T) {
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	testCases := []string{"", string(long)}

	for _, sku := range testCases {
		err := ValidateSKU(sku)
		if err == nil {
			t.Errorf("ValidateSKU(%q) error = nil, want error", sku)
		}
	}
}

func TestValidateSKU_ReservedCharacters(t *testing.T) {
	testCases := []string{
		"S1/evil",
		"a.b",
		"x#y",
		"p$q",
		"r[0]",
		"r]0",
	}

	for _, sku := range testCases {
		err := ValidateSKU(sku)
		if err == nil {
			t.Errorf("ValidateSKU(%q) error = nil, want error", sku)
		}
	}
}
