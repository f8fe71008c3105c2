package rest

import (
	"net/http"

	"github.com/apetrini/todolist-backend/internal/transport/middleware"
)

// RouterConfig bundles the handlers and middleware for NewRouter.
type RouterConfig struct {
	Auth   *AuthHandler
	Todo   *TodoHandler
	Health *HealthHandler

	// Base is applied to every route.
	Base middleware.Middleware
	// AuthLimit throttles the credential endpoints. May be nil.
	AuthLimit middleware.Middleware
}

// NewRouter builds the HTTP route table.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		if cfg.AuthLimit == nil {
			return h
		}
		return cfg.AuthLimit(h)
	}

	mux.Handle("POST /auth/register", limited(cfg.Auth.Register))
	mux.Handle("POST /auth/login", limited(cfg.Auth.Login))
	mux.HandleFunc("POST /auth/logout", cfg.Auth.Logout)

	mux.HandleFunc("GET /lists", cfg.Todo.ListLists)
	mux.HandleFunc("POST /lists", cfg.Todo.CreateList)
	mux.HandleFunc("DELETE /lists/{listID}", cfg.Todo.DeleteList)
	mux.HandleFunc("GET /lists/{listID}/items", cfg.Todo.ListItems)
	mux.HandleFunc("POST /lists/{listID}/items", cfg.Todo.CreateItem)
	mux.HandleFunc("POST /items/{itemID}/toggle", cfg.Todo.ToggleItem)
	mux.HandleFunc("DELETE /items/{itemID}", cfg.Todo.DeleteItem)

	mux.HandleFunc("GET /healthz", cfg.Health.Live)
	mux.HandleFunc("GET /readyz", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	if cfg.Base == nil {
		return mux
	}
	return cfg.Base(mux)
}
