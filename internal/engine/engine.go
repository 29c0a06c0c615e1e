// Package engine implements the daily reminder evaluation run. Three
// independent rules are applied to every product: low stock, expiring soon,
// and consumption due. The rules are not mutually exclusive, so a single
// product can yield up to three reminders in one run.
package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/rogerio-castellano/consumables-tracker/internal/models"
	"github.com/rogerio-castellano/consumables-tracker/internal/notify"
	"github.com/rogerio-castellano/consumables-tracker/internal/repo"
)

type Engine struct {
	products  repo.ProductRepository
	reminders repo.ReminderRepository
	notifier  notify.Notifier
	recipient string
}

func New(products repo.ProductRepository, reminders repo.ReminderRepository, notifier notify.Notifier, recipient string) *Engine {
	return &Engine{
		products:  products,
		reminders: reminders,
		notifier:  notifier,
		recipient: recipient,
	}
}

// Run executes one evaluation tick for the given date. The date is injected
// by the caller so runs are deterministic. Rules are evaluated rule-major:
// every low-stock reminder is generated before the first expiring-soon one.
//
// Evaluation is deliberately not idempotent: running twice on the same date
// duplicates the low-stock and expiring-soon reminders. A storage error
// aborts the run; a notification failure does not.
func (e *Engine) Run(today time.Time) error {
	today = Midnight(today)

	products, err := e.products.GetAll()
	if err != nil {
		return fmt.Errorf("evaluation: listing products: %w", err)
	}

	for _, p := range products {
		if p.Quantity <= p.MinimumStock {
			message := fmt.Sprintf("Low stock alert: %s (Quantity: %d)", p.Name, p.Quantity)
			if err := e.emit(p, "Low Stock Alert", message, today); err != nil {
				return err
			}
		}
	}

	horizon := today.AddDate(0, 0, repo.ExpiryHorizonDays)
	for _, p := range products {
		if !p.ExpirationDate.After(horizon) {
			message := fmt.Sprintf("Expiration alert: %s expires on %s", p.Name, p.ExpirationDate.Format("2006-01-02"))
			if err := e.emit(p, "Expiration Alert", message, today); err != nil {
				return err
			}
		}
	}

	for _, p := range products {
		if p.LastReminder == nil || daysBetween(*p.LastReminder, today) >= p.ReminderFrequencyDays {
			message := fmt.Sprintf("Consumption reminder: Time to take %s", p.Name)
			if err := e.emit(p, "Consumption Reminder", message, today); err != nil {
				return err
			}
			if err := e.products.SetLastReminder(p.ID, today); err != nil {
				return fmt.Errorf("evaluation: updating last reminder for product %d: %w", p.ID, err)
			}
		}
	}

	return nil
}

// emit persists one reminder and attempts delivery. The reminder is marked
// sent once delivery has been attempted, whether or not it succeeded.
func (e *Engine) emit(p models.Product, subject, message string, today time.Time) error {
	rem, err := e.reminders.Create(p.ID, message, today)
	if err != nil {
		return fmt.Errorf("evaluation: creating reminder for product %d: %w", p.ID, err)
	}

	if ok := e.notifier.Send(subject, message, e.recipient); !ok {
		log.Printf("⚠️ Notification for reminder %d not delivered", rem.ID)
	}

	if err := e.reminders.MarkSent(rem.ID); err != nil {
		return fmt.Errorf("evaluation: marking reminder %d sent: %w", rem.ID, err)
	}
	return nil
}

// Midnight normalizes a timestamp to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(Midnight(to).Sub(Midnight(from)).Hours() / 24)
}
