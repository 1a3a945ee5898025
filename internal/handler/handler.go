package handler

import (
	"net/http"

	"fsanano/hello-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Options configures the router.
type Options struct {
	Logger      zerolog.Logger
	Development bool
	Runtime     service.RuntimeInfo
}

type Handler struct {
	router  *chi.Mux
	runtime service.RuntimeInfo

	items    *ItemHandler
	users    *UserHandler
	contacts *ContactHandler
	login    *LoginHandler
}

func NewHandler(opts Options, items *ItemHandler, users *UserHandler, contacts *ContactHandler, login *LoginHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(opts.Logger))
	router.Use(recoverer(opts.Development))
	router.Use(newCompressor().Handler)

	h := &Handler{
		router:   router,
		runtime:  opts.Runtime,
		items:    items,
		users:    users,
		contacts: contacts,
		login:    login,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/", h.Root)
	h.router.Get("/healthz", h.HealthCheck)

	h.router.Get("/contact", h.contacts.Form)
	h.router.Post("/contact", h.contacts.Submit)
	h.router.Get("/login", h.login.Form)
	h.router.Post("/login", h.login.Login)

	h.router.Route("/api", func(r chi.Router) {
		r.Get("/hello", h.Hello)
		r.Get("/greeting", h.Greeting)
		r.Get("/spec", h.Spec)

		r.Get("/contacts", h.contacts.List)
		r.Get("/contacts/{id:-?[0-9]+}", h.contacts.Get)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.items.List)
			r.Post("/", h.items.Create)
			r.Get("/{id:-?[0-9]+}", h.items.Get)
			r.Put("/{id:-?[0-9]+}", h.items.Update)
			r.Delete("/{id:-?[0-9]+}", h.items.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.users.List)
			r.Post("/", h.users.Create)
			r.Get("/search", h.users.Search)
			r.Get("/{id:-?[0-9]+}", h.users.Get)
			r.Put("/{id:-?[0-9]+}", h.users.Update)
			r.Delete("/{id:-?[0-9]+}", h.users.Delete)
		})
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
