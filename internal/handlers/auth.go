package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/edualcrd/invoicemaker/internal/auth"
	"github.com/edualcrd/invoicemaker/internal/httpx"
	"github.com/edualcrd/invoicemaker/internal/models"
	"github.com/edualcrd/invoicemaker/internal/store"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users  *store.UserStore
	tokens *auth.TokenManager
	log    *zap.SugaredLogger
}

func NewAuthHandler(users *store.UserStore, tokens *auth.TokenManager, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, log: log}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
}

// Register creates an account. It never issues a token; the client logs in
// afterwards.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	// Exact, case-sensitive match: "User@x" and "user@x" are distinct accounts.
	if _, err := h.users.FindByEmail(r.Context(), req.Email); err == nil {
		httpx.JSONError(w, http.StatusBadRequest, auth.ErrDuplicateEmail.Error(), nil)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeStoreError(w, h.log, "register lookup", err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Errorw("hash password", "err", err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	user := models.User{Email: req.Email, Password: hash, CompanyName: req.CompanyName}
	if err := h.users.Create(r.Context(), &user); err != nil {
		writeStoreError(w, h.log, "register create", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"message": "account created"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	CompanyName string `json:"company_name"`
}

// Login verifies credentials and issues a bearer token. The company name is
// returned alongside so the client can display it without a second round trip.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	user, err := h.users.FindByEmail(r.Context(), strings.TrimSpace(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusBadRequest, auth.ErrUserNotFound.Error(), nil)
		return
	}
	if err != nil {
		writeStoreError(w, h.log, "login lookup", err)
		return
	}
	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, auth.ErrInvalidCredentials.Error(), nil)
		return
	}
	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		h.log.Errorw("issue token", "err", err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, loginResponse{Token: token, CompanyName: user.CompanyName})
}
