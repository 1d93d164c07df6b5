// Package httpapi exposes the Brainly HTTP/JSON API: auth, content CRUD, and
// public share-link resolution. Handlers stay thin; business rules live in
// the services package.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/basharkhan/brainly/internal/logging"
	"github.com/basharkhan/brainly/internal/server/config"
	"github.com/basharkhan/brainly/internal/server/models"
)

// UserService is the consumer-side contract for authentication operations.
type UserService interface {
	Signup(ctx context.Context, username, password string) (string, error)
	Signin(ctx context.Context, username, password string) (string, error)
	Verify(token string) (string, error)
}

// ContentService is the consumer-side contract for content CRUD.
type ContentService interface {
	Create(ctx context.Context, ownerID string, content *models.Content) (string, error)
	List(ctx context.Context, ownerID string) ([]*models.Content, error)
	Update(ctx context.Context, ownerID, contentID string, content *models.Content) error
	Delete(ctx context.Context, ownerID, contentID string) error
}

// ShareService is the consumer-side contract for share links.
type ShareService interface {
	EnableSharing(ctx context.Context, ownerID string) (string, error)
	Resolve(ctx context.Context, token string) ([]*models.Content, error)
	DisableSharing(ctx context.Context, ownerID string) error
}

// Server is a single stateless HTTP worker. Several of these run side by
// side, one per core, sharing the port via SO_REUSEPORT and coordinating
// only through the database.
type Server struct {
	httpServer *http.Server
	router     chi.Router
	log        logging.Logger
	users      UserService
	contents   ContentService
	shares     ShareService
	cfg        *config.Config
}

// NewServer wires the router and middleware around the provided services.
func NewServer(log logging.Logger, cfg *config.Config, us UserService, cs ContentService, ss ShareService) (*Server, error) {
	if cfg == nil || cfg.EndpointAddrHTTP == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if us == nil || cs == nil || ss == nil {
		return nil, errors.New("services cannot be nil")
	}

	s := &Server{
		router:   chi.NewRouter(),
		log:      log.With("module", "httpapi"),
		users:    us,
		contents: cs,
		shares:   ss,
		cfg:      cfg,
	}

	s.routes()

	s.httpServer = &http.Server{
		Addr:         cfg.EndpointAddrHTTP,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() {
	s.router.Use(s.requestLogger)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	s.router.Get("/", s.handleRoot)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/signin", s.handleSignin)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Post("/content", s.handleCreateContent)
			r.Get("/content", s.handleListContent)
			r.Put("/content", s.handleUpdateContent)
			r.Delete("/content", s.handleDeleteContent)
			r.Post("/brain/share", s.handleShareBrain)
		})

		r.Get("/brain/{shareLink}", s.handleResolveShare)
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens with a SO_REUSEPORT socket so sibling workers can bind the
// same address, serves until ctx is canceled, and then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := listenReusePort(ctx, "tcp", s.cfg.EndpointAddrHTTP)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
	}()

	s.log.Info(ctx, "starting HTTP server", "address", s.cfg.EndpointAddrHTTP)

	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
