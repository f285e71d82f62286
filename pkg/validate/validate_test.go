package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type payload struct {
	Name  string           `json:"name" validate:"required,max=10"`
	Email string           `json:"email" validate:"omitempty,email"`
	Count int              `json:"count" validate:"gt=0"`
	Price *decimal.Decimal `json:"price" validate:"required,nonnegative,money"`
	Fee   *decimal.Decimal `json:"fee" validate:"omitempty,nonnegative,money"`
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name     string
		input    payload
		expected map[string]string
	}{
		{
			name:     "Valid payload",
			input:    payload{Name: "coin", Email: "a@b.co", Count: 1, Price: price("10.50")},
			expected: nil,
		},
		{
			name:     "Zero price is present",
			input:    payload{Name: "coin", Count: 1, Price: price("0")},
			expected: nil,
		},
		{
			name:  "Missing required fields",
			input: payload{Count: 1},
			expected: map[string]string{
				"name":  "field required",
				"price": "field required",
			},
		},
		{
			name:  "Negative money",
			input: payload{Name: "coin", Count: 1, Price: price("-1"), Fee: price("-0.01")},
			expected: map[string]string{
				"price": "value must be greater than or equal to 0",
				"fee":   "value must be greater than or equal to 0",
			},
		},
		{
			name:  "Money beyond the column precision",
			input: payload{Name: "coin", Count: 1, Price: price("0.001"), Fee: price("1000000000000")},
			expected: map[string]string{
				"price": MoneyMessage,
				"fee":   MoneyMessage,
			},
		},
		{
			name:     "Largest representable money",
			input:    payload{Name: "coin", Count: 1, Price: price("999999999999.99"), Fee: price("1.50")},
			expected: nil,
		},
		{
			name:  "Bad email, long name and zero count",
			input: payload{Name: "abcdefghijk", Email: "nope", Price: price("1")},
			expected: map[string]string{
				"name":  "value is too long (max: 10)",
				"email": "value is not a valid email address",
				"count": "value must be greater than 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Struct(tt.input))
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"0", true},
		{"30.5", true},
		{"30.50", true},
		{"-999999999999.99", true},
		{"1.500", true},
		{"0.001", false},
		{"1e13", false},
		{"1000000000000", false},
		{"-1e20", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, Money(decimal.RequireFromString(tt.value)))
		})
	}
}
