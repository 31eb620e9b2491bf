package handlers

import (
	"net/http"
	"strings"

	"github.com/edualcrd/invoicemaker/internal/auth"
	"github.com/edualcrd/invoicemaker/internal/httpx"
	"github.com/edualcrd/invoicemaker/internal/models"
	"github.com/edualcrd/invoicemaker/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenses *store.ExpenseStore
	log      *zap.SugaredLogger
}

func NewExpenseHandler(expenses *store.ExpenseStore, log *zap.SugaredLogger) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, log: log}
}

type expenseRequest struct {
	Date     string          `json:"date"`
	Supplier string          `json:"supplier"`
	Concept  string          `json:"concept"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	expenses, err := h.expenses.List(r.Context(), userID)
	if err != nil {
		writeStoreError(w, h.log, "list expenses", err)
		return
	}
	httpx.JSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	var req expenseRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	req.Supplier = strings.TrimSpace(req.Supplier)
	req.Concept = strings.TrimSpace(req.Concept)
	if req.Date == "" || req.Supplier == "" || req.Concept == "" {
		httpx.JSONError(w, http.StatusBadRequest, "date, supplier and concept are required", nil)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid date", nil)
		return
	}
	expense := &models.Expense{
		Date:     date,
		Supplier: req.Supplier,
		Concept:  req.Concept,
		Amount:   req.Amount,
		Category: strings.TrimSpace(req.Category),
	}
	if err := h.expenses.Create(r.Context(), userID, expense); err != nil {
		writeStoreError(w, h.log, "create expense", err)
		return
	}
	httpx.JSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if ok {
		if err := h.expenses.Delete(r.Context(), userID, id); err != nil {
			writeStoreError(w, h.log, "delete expense", err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
