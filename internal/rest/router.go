package rest

import (
	"net/http"

	"resto-admin-be/internal/auth"
	"resto-admin-be/internal/dashboard"
	"resto-admin-be/internal/logger"
	"resto-admin-be/internal/menu"
	"resto-admin-be/internal/metrics"
	"resto-admin-be/internal/middleware"
	"resto-admin-be/internal/order"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Menu      menu.Service
	Orders    order.Service
	Dashboard dashboard.Service
	Auth      auth.Service
	Metrics   *metrics.Registry
	JWTSecret string
}

// NewRouter builds the full HTTP surface: menu and order CRUD, the
// dashboard endpoint, login and health. Mutating routes require a valid
// admin token.
func NewRouter(deps Deps) http.Handler {
	r := mux.NewRouter()

	r.Use(mux.MiddlewareFunc(logger.RequestIDMiddleware))
	r.Use(mux.MiddlewareFunc(logger.LoggingMiddleware))
	r.Use(mux.MiddlewareFunc(deps.Metrics.Middleware))

	limiter := middleware.NewRateLimiter(rate.Limit(10), 20)
	r.Use(mux.MiddlewareFunc(limiter.Middleware))

	guard := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(deps.JWTSecret, h)
	}

	menuH := NewMenuHandler(deps.Menu)
	r.HandleFunc("/menu/", menuH.List).Methods(http.MethodGet)
	r.Handle("/menu/", guard(menuH.Create)).Methods(http.MethodPost)
	r.HandleFunc("/menu/{item_id}", menuH.Get).Methods(http.MethodGet)
	r.Handle("/menu/{item_id}", guard(menuH.Update)).Methods(http.MethodPut)
	r.Handle("/menu/{item_id}", guard(menuH.Delete)).Methods(http.MethodDelete)

	orderH := NewOrderHandler(deps.Orders)
	r.HandleFunc("/orders/", orderH.List).Methods(http.MethodGet)
	r.Handle("/orders/", guard(orderH.Create)).Methods(http.MethodPost)
	r.HandleFunc("/orders/{order_id}", orderH.Get).Methods(http.MethodGet)
	r.Handle("/orders/{order_id}", guard(orderH.Update)).Methods(http.MethodPut)
	r.Handle("/orders/{order_id}", guard(orderH.Delete)).Methods(http.MethodDelete)

	dashH := NewDashboardHandler(deps.Dashboard)
	r.HandleFunc("/dashboard/", dashH.Stats).Methods(http.MethodGet)

	authH := NewAuthHandler(deps.Auth)
	r.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"metrics": deps.Metrics.Snapshot(),
		})
	}).Methods(http.MethodGet)

	return r
}
