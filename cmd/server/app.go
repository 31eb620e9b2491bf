package main

import (
	"net/http"
	"time"

	"github.com/edualcrd/invoicemaker/internal/auth"
	"github.com/edualcrd/invoicemaker/internal/config"
	"github.com/edualcrd/invoicemaker/internal/handlers"
	"github.com/edualcrd/invoicemaker/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the main application handler that wires stores, handlers and routes.
type App struct {
	mux    *http.ServeMux
	tokens *auth.TokenManager
	log    *zap.SugaredLogger
}

// NewApp creates the application with all routes configured.
func NewApp(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) *App {
	app := &App{
		mux:    http.NewServeMux(),
		tokens: auth.NewTokenManager(cfg.Auth.TokenSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour),
		log:    log,
	}

	users := store.NewUserStore(db)
	ah := handlers.NewAuthHandler(users, app.tokens, log)
	ch := handlers.NewClientHandler(store.NewClientStore(db), log)
	ph := handlers.NewProductHandler(store.NewProductStore(db), log)
	eh := handlers.NewExpenseHandler(store.NewExpenseStore(db), log)
	ih := handlers.NewInvoiceHandler(store.NewInvoiceStore(db), log)
	uh := handlers.NewProfileHandler(users, log)

	// Public routes
	app.mux.HandleFunc("POST /api/auth/register", ah.Register)
	app.mux.HandleFunc("POST /api/auth/login", ah.Login)

	// Protected routes: everything below requires a valid token
	app.handle("GET /api/clients", ch.List)
	app.handle("POST /api/clients", ch.Create)
	app.handle("PUT /api/clients/{id}", ch.Update)
	app.handle("DELETE /api/clients/{id}", ch.Delete)

	app.handle("GET /api/products", ph.List)
	app.handle("POST /api/products", ph.Create)
	app.handle("DELETE /api/products/{id}", ph.Delete)

	app.handle("GET /api/expenses", eh.List)
	app.handle("POST /api/expenses", eh.Create)
	app.handle("DELETE /api/expenses/{id}", eh.Delete)

	// next-number before the {id} routes for clarity; the mux resolves the
	// literal segment with higher precedence either way.
	app.handle("GET /api/invoices/next-number", ih.NextNumber)
	app.handle("GET /api/invoices", ih.List)
	app.handle("POST /api/invoices", ih.Create)
	app.handle("PUT /api/invoices/{id}", ih.Update)
	app.handle("PATCH /api/invoices/{id}", ih.TogglePaid)
	app.handle("DELETE /api/invoices/{id}", ih.Delete)

	app.handle("GET /api/user/profile", uh.Get)
	app.handle("PUT /api/user/profile", uh.Update)

	return app
}

// handle registers a protected route behind the token middleware.
func (a *App) handle(pattern string, h http.HandlerFunc) {
	a.mux.Handle(pattern, auth.Require(a.tokens, h))
}

// ServeHTTP applies the global middleware chain around the mux.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withCORS(a.withLogging(a.mux)).ServeHTTP(w, r)
}

// withLogging logs each request with its duration.
func (a *App) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.Infow("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// withCORS allows the SPA, served from another origin, to call the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+auth.TokenHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
