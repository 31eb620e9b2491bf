package handlers

import (
	"net/http"
	"strings"

	"github.com/edualcrd/invoicemaker/internal/auth"
	"github.com/edualcrd/invoicemaker/internal/httpx"
	"github.com/edualcrd/invoicemaker/internal/store"
	"go.uber.org/zap"
)

// ProfileHandler serves the company profile attached to the account. The
// password hash never appears in responses, and neither email nor password
// can be changed here.
type ProfileHandler struct {
	users *store.UserStore
	log   *zap.SugaredLogger
}

func NewProfileHandler(users *store.UserStore, log *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{users: users, log: log}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, h.log, "get profile", err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

type profileRequest struct {
	CompanyName  string `json:"company_name"`
	TaxID        string `json:"tax_id"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email"`
	IBAN         string `json:"iban"`
	Logo         string `json:"logo"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	var req profileRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, h.log, "load profile", err)
		return
	}
	user.CompanyName = strings.TrimSpace(req.CompanyName)
	user.TaxID = strings.TrimSpace(req.TaxID)
	user.Address = strings.TrimSpace(req.Address)
	user.ContactEmail = strings.TrimSpace(req.ContactEmail)
	user.IBAN = strings.TrimSpace(req.IBAN)
	user.Logo = req.Logo
	if err := h.users.Save(r.Context(), user); err != nil {
		writeStoreError(w, h.log, "save profile", err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}
