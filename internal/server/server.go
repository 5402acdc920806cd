package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bjarke-xyz/applications-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const maxRequestBodySize = 1 << 20

// RepositoriesFactory returns a fresh wrapper, and so a fresh unit of work,
// for each request.
type RepositoriesFactory func() domain.RepositoryWrapper

type server struct {
	logger *slog.Logger

	newRepositories RepositoriesFactory

	// bcrypt hash of the api key, empty when the api is open
	apiKeyHash string
}

func NewServer(logger *slog.Logger, newRepositories RepositoriesFactory, apiKeyHash string) *server {
	return &server{
		logger:          logger,
		newRepositories: newRepositories,
		apiKeyHash:      apiKeyHash,
	}
}

func (s *server) Server(port int) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.routes(),
	}
}

func (s *server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.RequestSize(maxRequestBodySize))

	r.Get("/up", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "up!")
	})

	r.Route("/applications", func(r chi.Router) {
		r.Use(s.apiKeyVerifier)
		r.Get("/", s.handleListApplications)
		r.Post("/", s.handleCreateApplication)

		r.Get("/{id}", s.handleGetApplication)
		r.Patch("/{id}", s.handlePatchApplication)
		r.Delete("/{id}", s.handleDeleteApplication)
	})
	return r
}
