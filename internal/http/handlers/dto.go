package handlers

type ProductRequest struct {
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	ExpirationDate    string `json:"expiration_date"` // YYYY-MM-DD
	ReminderFrequency int    `json:"reminder_frequency"`
	MinimumStock      int    `json:"minimum_stock"`
}

type ProductResponse struct {
	Id                int    `json:"id"`
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	ExpirationDate    string `json:"expiration_date"`
	ReminderFrequency int    `json:"reminder_frequency"`
	MinimumStock      int    `json:"minimum_stock"`
	LastReminder      string `json:"last_reminder,omitempty"`
	LowStock          bool   `json:"low_stock,omitempty"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type ReminderResponse struct {
	Id          int    `json:"id"`
	ProductId   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Message     string `json:"message"`
	DueDate     string `json:"due_date"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}
