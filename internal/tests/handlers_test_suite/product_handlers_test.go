package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/consumables-tracker/internal/http"
	handler "github.com/rogerio-castellano/consumables-tracker/internal/http/handlers"
)

func validProduct(name string) handler.ProductRequest {
	return handler.ProductRequest{
		Name:              name,
		Quantity:          10,
		ExpirationDate:    "2030-01-01",
		ReminderFrequency: 7,
		MinimumStock:      2,
	}
}

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, validProduct("VitaminD"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Name != "VitaminD" {
		t.Errorf("expected name 'VitaminD', got %v", resp.Name)
	}
	if resp.Quantity != 10 {
		t.Errorf("expected quantity 10, got %v", resp.Quantity)
	}
	if resp.ExpirationDate != "2030-01-01" {
		t.Errorf("expected expiration date 2030-01-01, got %v", resp.ExpirationDate)
	}
	if resp.LastReminder != "" {
		t.Errorf("expected no last reminder on creation, got %v", resp.LastReminder)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name",
			payload:        handler.ProductRequest{Name: "", Quantity: 1, ExpirationDate: "2030-01-01", ReminderFrequency: 7},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.ProductRequest{Name: "Aspirin", Quantity: -1, ExpirationDate: "2030-01-01", ReminderFrequency: 7},
			expectedErrors: []string{"Quantity"},
		},
		{
			name:           "Zero reminder frequency",
			payload:        handler.ProductRequest{Name: "Aspirin", Quantity: 1, ExpirationDate: "2030-01-01", ReminderFrequency: 0},
			expectedErrors: []string{"ReminderFrequency"},
		},
		{
			name:           "Bad expiration date",
			payload:        handler.ProductRequest{Name: "Aspirin", Quantity: 1, ExpirationDate: "tomorrow", ReminderFrequency: 7},
			expectedErrors: []string{"ExpirationDate"},
		},
		{
			name:           "Negative minimum stock",
			payload:        handler.ProductRequest{Name: "Aspirin", Quantity: 1, ExpirationDate: "2030-01-01", ReminderFrequency: 7, MinimumStock: -1},
			expectedErrors: []string{"MinimumStock"},
		},
		{
			name:           "Everything wrong at once",
			payload:        handler.ProductRequest{Name: " ", Quantity: -1, ExpirationDate: "", ReminderFrequency: -3},
			expectedErrors: []string{"Name", "Quantity", "ExpirationDate", "ReminderFrequency"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	badJSON := `{name: "Invalid" quantity: 1 "}`
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(badJSON))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateProductHandler_RequiresToken(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	body, _ := json.Marshal(validProduct("VitaminD"))
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 Unauthorized, got %d", w.Code)
	}
}

func TestGetProductsHandler_InsertionOrder(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	for _, name := range []string{"First", "Second", "Third"} {
		if w := createProduct(r, validProduct(name)); w.Code != http.StatusCreated {
			t.Fatalf("create %s: expected 201, got %d", name, w.Code)
		}
	}

	w := get(r, "/products")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 products, got %d", len(resp))
	}
	for i, name := range []string{"First", "Second", "Third"} {
		if resp[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, resp[i].Name)
		}
	}
}

func TestAdjustQuantityHandler_ClampsAtZero(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, validProduct("Aspirin"))
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = adjustQuantity(r, created.Id, handler.QuantityAdjustmentRequest{Delta: -1000})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Quantity != 0 {
		t.Errorf("expected quantity clamped to 0, got %d", resp.Quantity)
	}
	if !resp.LowStock {
		t.Errorf("expected low stock flag after clamping to zero")
	}
}

func TestAdjustQuantityHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := adjustQuantity(r, 999, handler.QuantityAdjustmentRequest{Delta: 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, validProduct("Milk"))
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	if w := deleteProduct(r, created.Id); w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content, got %d", w.Code)
	}
	if w := deleteProduct(r, created.Id); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}
