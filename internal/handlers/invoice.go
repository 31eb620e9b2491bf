package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/edualcrd/invoicemaker/internal/auth"
	"github.com/edualcrd/invoicemaker/internal/billing"
	"github.com/edualcrd/invoicemaker/internal/httpx"
	"github.com/edualcrd/invoicemaker/internal/models"
	"github.com/edualcrd/invoicemaker/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	invoices *store.InvoiceStore
	log      *zap.SugaredLogger
}

func NewInvoiceHandler(invoices *store.InvoiceStore, log *zap.SugaredLogger) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, log: log}
}

type invoiceRequest struct {
	Number  string                `json:"number"`
	Date    string                `json:"date"`
	DueDate string                `json:"due_date"`
	Client  models.ClientSnapshot `json:"client"`
	Items   []models.LineItem     `json:"items"`
	TaxRate *decimal.Decimal      `json:"tax_rate"`
	Paid    bool                  `json:"paid"`
}

// toModel validates the draft and computes the stored totals. The client
// block is kept as-is: it is the caller's snapshot of the contact at save
// time, not a reference we resolve.
func (req *invoiceRequest) toModel() (*models.Invoice, string) {
	req.Number = strings.TrimSpace(req.Number)
	if req.Number == "" {
		return nil, "number is required"
	}
	if req.Date == "" {
		return nil, "date is required"
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, "invalid date"
	}
	var dueDate *time.Time
	if req.DueDate != "" {
		due, err := parseDate(req.DueDate)
		if err != nil {
			return nil, "invalid due_date"
		}
		dueDate = &due
	}
	taxRate := billing.DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	items := req.Items
	if items == nil {
		items = []models.LineItem{}
	}
	totals := billing.Compute(items, taxRate)
	return &models.Invoice{
		Number:      req.Number,
		Date:        date,
		DueDate:     dueDate,
		Client:      req.Client,
		Items:       items,
		TaxRate:     taxRate,
		TaxableBase: totals.TaxableBase,
		Total:       totals.Total,
		Paid:        req.Paid,
	}, ""
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	invoices, err := h.invoices.List(r.Context(), userID)
	if err != nil {
		writeStoreError(w, h.log, "list invoices", err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	var req invoiceRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	invoice, msg := req.toModel()
	if msg != "" {
		httpx.JSONError(w, http.StatusBadRequest, msg, nil)
		return
	}
	if err := h.invoices.Create(r.Context(), userID, invoice); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Two drafts raced to the same suggested number; the second one
			// loses and picks a new number.
			httpx.JSONError(w, http.StatusBadRequest, "invoice number already used", nil)
			return
		}
		writeStoreError(w, h.log, "create invoice", err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not found", nil)
		return
	}
	var req invoiceRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	draft, msg := req.toModel()
	if msg != "" {
		httpx.JSONError(w, http.StatusBadRequest, msg, nil)
		return
	}
	invoice, err := h.invoices.Update(r.Context(), userID, id, draft)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.JSONError(w, http.StatusBadRequest, "invoice number already used", nil)
			return
		}
		writeStoreError(w, h.log, "update invoice", err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

// TogglePaid flips the paid flag; it is the only partial update the API has.
func (h *InvoiceHandler) TogglePaid(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not found", nil)
		return
	}
	invoice, err := h.invoices.TogglePaid(r.Context(), userID, id)
	if err != nil {
		writeStoreError(w, h.log, "toggle invoice paid", err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if ok {
		if err := h.invoices.Delete(r.Context(), userID, id); err != nil {
			writeStoreError(w, h.log, "delete invoice", err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// NextNumber suggests the caller's next sequential invoice number. It only
// reads: nothing is reserved, and the client may submit any number it wants.
func (h *InvoiceHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	last := ""
	latest, err := h.invoices.LastCreated(r.Context(), userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeStoreError(w, h.log, "next invoice number", err)
		return
	}
	if latest != nil {
		last = latest.Number
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"next": billing.NextNumber(last, time.Now())})
}
