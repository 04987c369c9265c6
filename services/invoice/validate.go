package invoice

import (
	"regexp"

	"billify/models"
)

// phonePattern accepts exactly 10 decimal digits, no formatting characters.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidateInput checks a draft export bill against the intake rules. Checks
// run in a fixed order and the first violation wins; a draft is never
// partially accepted.
func ValidateInput(in models.InvoiceInput) error {
	if in.CustomerName == "" {
		return MissingFieldError{Field: "customerName"}
	}
	if len(in.Items) == 0 {
		return MissingFieldError{Field: "items"}
	}
	if !phonePattern.MatchString(in.CustomerPhone) {
		return InvalidFormatError{Field: "customer phone number", Value: in.CustomerPhone}
	}
	for i, item := range in.Items {
		if item.Name == "" {
			return InvalidItemError{Index: i, Reason: "name is required"}
		}
		if item.Price <= 0 {
			return InvalidItemError{Index: i, Reason: "price must be a positive number"}
		}
		if item.Quantity < 1 {
			return InvalidItemError{Index: i, Reason: "quantity must be at least 1"}
		}
	}
	return nil
}
