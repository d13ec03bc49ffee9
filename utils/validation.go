package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositiveAmount checks if an amount is strictly positive
func ValidatePositiveAmount(value decimal.Decimal, fieldName string) error {
	if value.Sign() <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegativeAmount checks if an amount is not negative
func ValidateNonNegativeAmount(value decimal.Decimal, fieldName string) error {
	if value.Sign() < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}
