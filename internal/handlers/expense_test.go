package handlers

import (
	"net/http"
	"testing"

	"github.com/edualcrd/invoicemaker/internal/models"
	"github.com/edualcrd/invoicemaker/internal/store"
	"github.com/shopspring/decimal"
)

func TestExpenseCreateDefaultsCategory(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	h := NewExpenseHandler(store.NewExpenseStore(db), testLogger())

	var created models.Expense
	w := doJSON(t, h.Create, http.MethodPost, "/api/expenses", owner.ID,
		`{"date":"2024-03-01","supplier":"Vodafone","concept":"Office internet","amount":50}`, &created)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if created.Category != models.DefaultExpenseCategory {
		t.Errorf("category = %q, want %q", created.Category, models.DefaultExpenseCategory)
	}
	if !created.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("amount = %s, want 50", created.Amount)
	}
}

func TestExpenseCreateKeepsExplicitCategory(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	h := NewExpenseHandler(store.NewExpenseStore(db), testLogger())

	var created models.Expense
	doJSON(t, h.Create, http.MethodPost, "/api/expenses", owner.ID,
		`{"date":"2024-03-01","supplier":"Amazon","concept":"Keyboard","amount":80,"category":"Hardware"}`, &created)
	if created.Category != "Hardware" {
		t.Errorf("category = %q, want Hardware", created.Category)
	}
}

func TestExpenseCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	h := NewExpenseHandler(store.NewExpenseStore(db), testLogger())

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"amount":10}`},
		{"bad date", `{"date":"03/01/2024","supplier":"X","concept":"Y","amount":10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doJSON(t, h.Create, http.MethodPost, "/api/expenses", owner.ID, tt.body, nil); w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", w.Code)
			}
		})
	}
}

func TestExpenseListScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice@x.dev")
	bob := seedUser(t, db, "bob@x.dev")
	h := NewExpenseHandler(store.NewExpenseStore(db), testLogger())

	doJSON(t, h.Create, http.MethodPost, "/api/expenses", alice.ID,
		`{"date":"2024-03-01","supplier":"S","concept":"C","amount":10}`, nil)

	var bobList []models.Expense
	doJSON(t, h.List, http.MethodGet, "/api/expenses", bob.ID, "", &bobList)
	if len(bobList) != 0 {
		t.Fatalf("bob sees foreign expenses: %+v", bobList)
	}
}
