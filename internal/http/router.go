package http

import (
	"net/http"

	"bookshop/internal/blob"
	"bookshop/internal/cart"
	"bookshop/internal/catalog"
	"bookshop/internal/httpx"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Books     *catalog.Store
	Cart      *cart.Store
	Auth      *AuthHandler
	Blobs     blob.Store
	JWTSecret string

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxRequestSize int64
}

// NewRouter wires handlers and the middleware chain into one handler.
func NewRouter(cfg RouterConfig) http.Handler {
	bookHandler := NewBookHandler(cfg.Books)
	cartHandler := NewCartHandler(cfg.Cart, cfg.Books)
	contactHandler := NewContactHandler()

	adminOnly := func(h http.HandlerFunc) http.Handler {
		return httpx.AuthMiddleware(cfg.JWTSecret)(httpx.RequireRole("ADMIN")(h))
	}

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := cfg.Blobs.Ping(r.Context()); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("/books", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			bookHandler.List(w, r)
		case http.MethodPost:
			adminOnly(bookHandler.Create).ServeHTTP(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	router.HandleFunc("/books/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			bookHandler.Get(w, r)
		case http.MethodPut:
			adminOnly(bookHandler.Update).ServeHTTP(w, r)
		case http.MethodDelete:
			adminOnly(bookHandler.Delete).ServeHTTP(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	router.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cartHandler.Get(w, r)
		case http.MethodDelete:
			cartHandler.Clear(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	router.HandleFunc("/cart/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		cartHandler.AddItem(w, r)
	})
	router.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut, http.MethodPatch:
			cartHandler.SetQuantity(w, r)
		case http.MethodDelete:
			cartHandler.RemoveItem(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	router.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		cfg.Auth.Login(w, r)
	})
	router.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		cfg.Auth.Register(w, r)
	})

	router.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		contactHandler.Submit(w, r)
	})

	var handler http.Handler = router
	handler = httpx.AccessLogMiddleware(handler)
	if cfg.MaxRequestSize > 0 {
		handler = httpx.RequestSizeLimitMiddleware(cfg.MaxRequestSize)(handler)
	}
	if cfg.RateLimitRPS > 0 {
		handler = httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware(handler)
	}
	if len(cfg.CORSOrigins) > 0 {
		handler = httpx.CORSMiddleware(cfg.CORSOrigins)(handler)
	}
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	return handler
}
