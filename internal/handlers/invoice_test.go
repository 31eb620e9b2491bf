package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/edualcrd/invoicemaker/internal/models"
	"github.com/edualcrd/invoicemaker/internal/store"
	"github.com/shopspring/decimal"
)

func TestInvoiceCreateComputesTotals(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	h := NewInvoiceHandler(store.NewInvoiceStore(db), testLogger())

	var created models.Invoice
	w := doJSON(t, h.Create, http.MethodPost, "/api/invoices", owner.ID,
		`{"number":"2024-001","date":"2024-03-10","client":{"name":"Globex","tax_id":"B1","email":"b@g","address":"1 Main"},"items":[{"concept":"dev work","quantity":2,"unit_price":100}]}`,
		&created)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	check := func(label string, got decimal.Decimal, want string) {
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("%s = %s, want %s", label, got, want)
		}
	}
	check("taxable_base", created.TaxableBase, "200")
	check("tax_rate", created.TaxRate, "21") // defaulted
	check("total", created.Total, "212")     // 200 + 42 tax − 30 withholding
	if created.Paid {
		t.Error("new invoice should not be paid")
	}
}

func TestInvoiceSnapshotSurvivesClientChanges(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	clients := store.NewClientStore(db)
	invoices := store.NewInvoiceStore(db)
	h := NewInvoiceHandler(invoices, testLogger())

	source := models.Client{Name: "Globex", TaxID: "B1", Email: "b@g", Address: "1 Main"}
	if err := clients.Create(testCtx, owner.ID, &source); err != nil {
		t.Fatalf("seed client: %v", err)
	}

	var created models.Invoice
	doJSON(t, h.Create, http.MethodPost, "/api/invoices", owner.ID,
		`{"number":"2024-001","date":"2024-03-10","client":{"name":"Globex","tax_id":"B1","email":"b@g","address":"1 Main"},"items":[]}`,
		&created)

	// Mutate then delete the source client.
	if _, err := clients.Update(testCtx, owner.ID, source.ID, &models.Client{Name: "Renamed", TaxID: "Z9", Email: "z@z", Address: "moved"}); err != nil {
		t.Fatalf("update client: %v", err)
	}
	if err := clients.Delete(testCtx, owner.ID, source.ID); err != nil {
		t.Fatalf("delete client: %v", err)
	}

	fetched, err := invoices.Get(testCtx, owner.ID, created.ID)
	if err != nil {
		t.Fatalf("fetch invoice: %v", err)
	}
	if fetched.Client.Name != "Globex" || fetched.Client.TaxID != "B1" {
		t.Errorf("snapshot changed with source client: %+v", fetched.Client)
	}
}

func TestInvoiceTogglePaidTwice(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	invoices := store.NewInvoiceStore(db)
	h := NewInvoiceHandler(invoices, testLogger())

	var created models.Invoice
	doJSON(t, h.Create, http.MethodPost, "/api/invoices", owner.ID,
		`{"number":"2024-001","date":"2024-03-10","items":[]}`, &created)
	id := strconv.Itoa(int(created.ID))

	var once models.Invoice
	if w := doJSONID(t, h.TogglePaid, http.MethodPatch, "/api/invoices/"+id, owner.ID, id, "", &once); w.Code != http.StatusOK {
		t.Fatalf("first toggle: expected 200 got %d", w.Code)
	}
	if !once.Paid {
		t.Fatal("first toggle should mark paid")
	}
	var twice models.Invoice
	doJSONID(t, h.TogglePaid, http.MethodPatch, "/api/invoices/"+id, owner.ID, id, "", &twice)
	if twice.Paid {
		t.Fatal("second toggle should return to unpaid")
	}
}

func TestInvoiceDuplicateNumberSameTenant(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	h := NewInvoiceHandler(store.NewInvoiceStore(db), testLogger())

	body := `{"number":"2024-007","date":"2024-03-10","items":[]}`
	if w := doJSON(t, h.Create, http.MethodPost, "/api/invoices", owner.ID, body, nil); w.Code != http.StatusOK {
		t.Fatalf("first create: expected 200 got %d", w.Code)
	}
	w := doJSON(t, h.Create, http.MethodPost, "/api/invoices", owner.ID, body, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate number: expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestInvoiceSameNumberAcrossTenants(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice@x.dev")
	bob := seedUser(t, db, "bob@x.dev")
	h := NewInvoiceHandler(store.NewInvoiceStore(db), testLogger())

	body := `{"number":"2024-001","date":"2024-03-10","items":[]}`
	if w := doJSON(t, h.Create, http.MethodPost, "/api/invoices", alice.ID, body, nil); w.Code != http.StatusOK {
		t.Fatalf("alice create: expected 200 got %d", w.Code)
	}
	// Numbers are only unique per tenant; bob may reuse alice's.
	if w := doJSON(t, h.Create, http.MethodPost, "/api/invoices", bob.ID, body, nil); w.Code != http.StatusOK {
		t.Fatalf("bob create: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestInvoiceNextNumberEndpoint(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	other := seedUser(t, db, "other@x.dev")
	invoices := store.NewInvoiceStore(db)
	h := NewInvoiceHandler(invoices, testLogger())

	year := time.Now().Year()

	var resp map[string]string
	doJSON(t, h.NextNumber, http.MethodGet, "/api/invoices/next-number", owner.ID, "", &resp)
	if want := fmt.Sprintf("%d-001", year); resp["next"] != want {
		t.Fatalf("fresh tenant: next = %q, want %q", resp["next"], want)
	}

	// Seed this year's 007; suggestion increments it.
	seed := models.Invoice{Number: fmt.Sprintf("%d-007", year), Date: time.Now(), Items: []models.LineItem{}}
	if err := invoices.Create(testCtx, owner.ID, &seed); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	doJSON(t, h.NextNumber, http.MethodGet, "/api/invoices/next-number", owner.ID, "", &resp)
	if want := fmt.Sprintf("%d-008", year); resp["next"] != want {
		t.Fatalf("increment: next = %q, want %q", resp["next"], want)
	}

	// Another tenant's invoices never influence the suggestion.
	doJSON(t, h.NextNumber, http.MethodGet, "/api/invoices/next-number", other.ID, "", &resp)
	if want := fmt.Sprintf("%d-001", year); resp["next"] != want {
		t.Fatalf("other tenant: next = %q, want %q", resp["next"], want)
	}
}

func TestInvoiceListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	invoices := store.NewInvoiceStore(db)
	h := NewInvoiceHandler(invoices, testLogger())

	old := models.Invoice{Number: "2023-001", Date: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), Items: []models.LineItem{}}
	recent := models.Invoice{Number: "2024-001", Date: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), Items: []models.LineItem{}}
	for _, inv := range []*models.Invoice{&old, &recent} {
		if err := invoices.Create(testCtx, owner.ID, inv); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	var list []models.Invoice
	doJSON(t, h.List, http.MethodGet, "/api/invoices", owner.ID, "", &list)
	if len(list) != 2 || list[0].Number != "2024-001" {
		t.Fatalf("expected newest first, got %+v", list)
	}
}

func TestInvoiceUpdateRecomputesTotals(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@x.dev")
	h := NewInvoiceHandler(store.NewInvoiceStore(db), testLogger())

	var created models.Invoice
	doJSON(t, h.Create, http.MethodPost, "/api/invoices", owner.ID,
		`{"number":"2024-001","date":"2024-03-10","items":[{"concept":"a","quantity":1,"unit_price":100}]}`, &created)
	id := strconv.Itoa(int(created.ID))

	var updated models.Invoice
	w := doJSONID(t, h.Update, http.MethodPut, "/api/invoices/"+id, owner.ID, id,
		`{"number":"2024-001","date":"2024-03-10","tax_rate":10,"items":[{"concept":"a","quantity":3,"unit_price":100}]}`, &updated)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if !updated.TaxableBase.Equal(decimal.NewFromInt(300)) {
		t.Errorf("taxable_base = %s, want 300", updated.TaxableBase)
	}
	// 300 + 30 tax − 45 withholding
	if !updated.Total.Equal(decimal.NewFromInt(285)) {
		t.Errorf("total = %s, want 285", updated.Total)
	}
}
