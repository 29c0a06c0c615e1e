package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	repo "github.com/rogerio-castellano/consumables-tracker/internal/repo"
)

// deletedProductName is shown for reminders whose product has been removed.
const deletedProductName = "(deleted product)"

// GetRemindersHandler godoc
// @Summary List unsent reminders
// @Description Each reminder is annotated with the owning product's name.
// @Tags reminders
// @Produce json
// @Success 200 {array} ReminderResponse
// @Failure 500 {string} string "Internal error"
// @Router /reminders [get]
func GetRemindersHandler(w http.ResponseWriter, r *http.Request) {
	reminders, err := reminderRepo.GetUnsent()
	if err != nil {
		http.Error(w, "could not fetch reminders", http.StatusInternalServerError)
		return
	}

	response := make([]ReminderResponse, len(reminders))
	for i, rem := range reminders {
		name := deletedProductName
		product, err := productRepo.GetByID(rem.ProductID)
		if err == nil {
			name = product.Name
		} else if !errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "could not fetch reminders", http.StatusInternalServerError)
			return
		}

		response[i] = ReminderResponse{
			Id:          rem.ID,
			ProductId:   rem.ProductID,
			ProductName: name,
			Message:     rem.Message,
			DueDate:     rem.DueDate.Format(dateLayout),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
