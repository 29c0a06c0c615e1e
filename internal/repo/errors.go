package repo

import "errors"

// ErrProductNotFound is returned when a product id is unknown to the store.
var ErrProductNotFound = errors.New("product not found")

// ErrReminderNotFound is returned when a reminder id is unknown to the store.
var ErrReminderNotFound = errors.New("reminder not found")
