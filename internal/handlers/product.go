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

type ProductHandler struct {
	products *store.ProductStore
	log      *zap.SugaredLogger
}

func NewProductHandler(products *store.ProductStore, log *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

type productRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	products, err := h.products.List(r.Context(), userID)
	if err != nil {
		writeStoreError(w, h.log, "list products", err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	var req productRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "name is required", nil)
		return
	}
	product := &models.Product{Name: req.Name, UnitPrice: req.UnitPrice}
	if err := h.products.Create(r.Context(), userID, product); err != nil {
		writeStoreError(w, h.log, "create product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if ok {
		if err := h.products.Delete(r.Context(), userID, id); err != nil {
			writeStoreError(w, h.log, "delete product", err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
