package handlers

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if _, err := time.Parse(dateLayout, p.ExpirationDate); err != nil {
		errs = append(errs, ProductValidationError{Field: "ExpirationDate", Description: "Expiration date must be YYYY-MM-DD"})
	}
	if p.ReminderFrequency < 1 {
		errs = append(errs, ProductValidationError{Field: "ReminderFrequency", Description: "Reminder frequency must be at least one day"})
	}
	if p.MinimumStock < 0 {
		errs = append(errs, ProductValidationError{Field: "MinimumStock", Description: "Minimum stock cannot be negative"})
	}
	return errs
}
