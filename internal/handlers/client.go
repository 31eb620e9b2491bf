package handlers

import (
	"net/http"
	"strings"

	"github.com/edualcrd/invoicemaker/internal/auth"
	"github.com/edualcrd/invoicemaker/internal/httpx"
	"github.com/edualcrd/invoicemaker/internal/models"
	"github.com/edualcrd/invoicemaker/internal/store"
	"go.uber.org/zap"
)

type ClientHandler struct {
	clients *store.ClientStore
	log     *zap.SugaredLogger
}

func NewClientHandler(clients *store.ClientStore, log *zap.SugaredLogger) *ClientHandler {
	return &ClientHandler{clients: clients, log: log}
}

type clientRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (req *clientRequest) validate() []string {
	var missing []string
	for field, value := range map[string]string{
		"name": req.Name, "tax_id": req.TaxID, "email": req.Email, "address": req.Address,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func (req *clientRequest) model() *models.Client {
	return &models.Client{
		Name:    strings.TrimSpace(req.Name),
		TaxID:   strings.TrimSpace(req.TaxID),
		Email:   strings.TrimSpace(req.Email),
		Address: strings.TrimSpace(req.Address),
	}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	clients, err := h.clients.List(r.Context(), userID)
	if err != nil {
		writeStoreError(w, h.log, "list clients", err)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	var req clientRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if missing := req.validate(); len(missing) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "missing required fields", missing)
		return
	}
	client := req.model()
	if err := h.clients.Create(r.Context(), userID, client); err != nil {
		writeStoreError(w, h.log, "create client", err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not found", nil)
		return
	}
	var req clientRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if missing := req.validate(); len(missing) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "missing required fields", missing)
		return
	}
	client, err := h.clients.Update(r.Context(), userID, id, req.model())
	if err != nil {
		writeStoreError(w, h.log, "update client", err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if ok {
		if err := h.clients.Delete(r.Context(), userID, id); err != nil {
			writeStoreError(w, h.log, "delete client", err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
