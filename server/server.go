// Package server wires together the ltgen workbench's HTTP API: account and
// session management, saved grammars, and LL(k) analysis, all served over a
// chi router with JWT-authenticated endpoints.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hcasse/ltgen/server/api"
	"github.com/hcasse/ltgen/server/dao"
	"github.com/hcasse/ltgen/server/middle"
	"github.com/hcasse/ltgen/server/tunas"
	"github.com/go-chi/chi/v5"
)

// Server is a running instance of the ltgen workbench HTTP API, holding the
// persistence layer it was configured with and the router built on top of it.
type Server struct {
	db     dao.Store
	router chi.Router
	secret []byte
}

// New assembles a Server from the given config. The database connection
// named in cfg.DB is opened immediately; the returned error, if any, comes
// from that connection attempt.
func New(cfg Config) (*Server, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := cfg.DB.Connect()
	if err != nil {
		return nil, fmt.Errorf("connect to DB: %w", err)
	}

	srv := &Server{db: db, secret: cfg.TokenSecret}

	backend := tunas.Service{DB: db}
	a := api.API{
		Backend:     backend,
		UnauthDelay: cfg.UnauthDelay(),
		Secret:      cfg.TokenSecret,
	}

	r := chi.NewRouter()
	r.Use(middle.DontPanic())

	r.Get("/api/v1/info", a.HTTPGetInfo())
	r.Post("/api/v1/users", a.HTTPCreateUser())
	r.Post("/api/v1/login", a.HTTPCreateLogin())

	r.Group(func(r chi.Router) {
		r.Use(middle.RequireAuth(db.Users(), cfg.TokenSecret, cfg.UnauthDelay(), dao.User{}))
		r.Delete("/api/v1/login", a.HTTPDeleteLogin())
		r.Get("/api/v1/grammars", a.HTTPGetGrammars())
		r.Post("/api/v1/grammars", a.HTTPCreateGrammar())
		r.Get("/api/v1/grammars/{id}", a.HTTPGetGrammar())
		r.Post("/api/v1/grammars/{id}/analyze", a.HTTPAnalyzeGrammar())
	})

	srv.router = r
	return srv, nil
}

// CreateUser is a convenience wrapper used by operators (e.g. a CLI seeding
// an initial admin account) to create a user without going through the HTTP
// API.
func (srv *Server) CreateUser(ctx context.Context, username, password, email string, role dao.Role) (dao.User, error) {
	backend := tunas.Service{DB: srv.db}
	return backend.CreateUser(ctx, username, password, email, role)
}

// ServeForever starts listening on addr:port and blocks until the HTTP
// server exits, which only happens on an unrecoverable error.
func (srv *Server) ServeForever(addr string, port int) error {
	listenOn := fmt.Sprintf("%s:%d", addr, port)
	return http.ListenAndServe(listenOn, srv.router)
}

// Close releases the underlying persistence connection.
func (srv *Server) Close() error {
	return srv.db.Close()
}
