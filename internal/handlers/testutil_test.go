package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edualcrd/invoicemaker/internal/auth"
	"github.com/edualcrd/invoicemaker/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a unique in-memory database per test to avoid cross-test
// collisions, with the same error translation the real connection uses.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Client{}, &models.Product{}, &models.Expense{}, &models.Invoice{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	u := models.User{Email: email, Password: "x", CompanyName: "ACME " + email}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// doJSON performs a request against h with an authenticated context for userID
// (skipped when userID is zero) and decodes the response body into out when
// out is non-nil.
func doJSON(t *testing.T, h http.HandlerFunc, method, target string, userID uint, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	w := httptest.NewRecorder()
	h(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w
}

// doJSONID is doJSON for routes carrying an {id} path segment.
func doJSONID(t *testing.T, h http.HandlerFunc, method, target string, userID uint, id, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", id)
	if userID != 0 {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	w := httptest.NewRecorder()
	h(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w
}

var testCtx = context.Background()
