package repo

import (
	"context"
	"database/sql"
	"time"

	models "github.com/rogerio-castellano/consumables-tracker/internal/models"
)

type PostgresReminderRepository struct {
	db *sql.DB
}

func NewPostgresReminderRepository(db *sql.DB) *PostgresReminderRepository {
	return &PostgresReminderRepository{db: db}
}

func (r *PostgresReminderRepository) Create(productID int, message string, dueDate time.Time) (models.Reminder, error) {
	query := `INSERT INTO reminders (product_id, message, due_date, sent) VALUES ($1, $2, $3, false) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rem := models.Reminder{ProductID: productID, Message: message, DueDate: dueDate}
	err := r.db.QueryRowContext(ctx, query, productID, message, dueDate).Scan(&rem.ID)
	return rem, err
}

func (r *PostgresReminderRepository) GetUnsent() ([]models.Reminder, error) {
	query := `SELECT id, product_id, message, due_date, sent FROM reminders WHERE sent = false ORDER BY id`
	return r.query(query)
}

func (r *PostgresReminderRepository) GetByProductID(productID int) ([]models.Reminder, error) {
	query := `SELECT id, product_id, message, due_date, sent FROM reminders WHERE product_id = $1 ORDER BY id`
	return r.query(query, productID)
}

func (r *PostgresReminderRepository) MarkSent(id int) error {
	query := `UPDATE reminders SET sent = true WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrReminderNotFound
	}
	return nil
}

func (r *PostgresReminderRepository) query(query string, args ...any) ([]models.Reminder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.ProductID, &rem.Message, &rem.DueDate, &rem.Sent); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}
