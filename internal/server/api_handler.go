package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bjarke-xyz/applications-api/internal/domain"
	"github.com/bjarke-xyz/applications-api/internal/mapper"
	"github.com/go-chi/chi/v5"
)

var errNullApplication = fmt.Errorf("%w: application object is null", domain.ErrInvalidInput)

func decodeApplication(r *http.Request) (mapper.ApplicationDTO, error) {
	var dto *mapper.ApplicationDTO
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&dto)
	if errors.Is(err, io.EOF) || (err == nil && dto == nil) {
		return mapper.ApplicationDTO{}, errNullApplication
	}
	if err != nil {
		return mapper.ApplicationDTO{}, fmt.Errorf("%w: invalid model object: %w", domain.ErrInvalidInput, err)
	}
	// the body must hold exactly one value
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after application object")
		}
		return mapper.ApplicationDTO{}, fmt.Errorf("%w: invalid model object: %w", domain.ErrInvalidInput, err)
	}
	return *dto, nil
}

func applicationID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, fmt.Errorf("%w: application id must be an integer", domain.ErrInvalidInput)
	}
	return id, nil
}

// loadApplication writes the 404 or 500 response itself when it reports false.
func (s *server) loadApplication(w http.ResponseWriter, r *http.Request, repos domain.RepositoryWrapper, id int) (domain.Application, bool) {
	app, ok, err := repos.Application().FindByID(r.Context(), id)
	if err != nil {
		s.storeFailure(w, r, "error getting application by id", err, "id", id)
		return app, false
	}
	if !ok {
		s.notFound(w, id)
		return app, false
	}
	return app, true
}

func (s *server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	repos := s.newRepositories()
	apps := make([]domain.Application, 0)
	for app, err := range repos.Application().FindAll(r.Context()) {
		if err != nil {
			s.storeFailure(w, r, "error getting applications", err)
			return
		}
		apps = append(apps, app)
	}
	jsonResponse(w, http.StatusOK, mapper.ToDTOs(apps))
}

func (s *server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := applicationID(r)
	if err != nil {
		s.badRequest(w, "invalid application id", err)
		return
	}
	app, ok := s.loadApplication(w, r, s.newRepositories(), id)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, mapper.ToDTO(app))
}

func (s *server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	input, err := decodeApplication(r)
	if err != nil {
		s.badRequest(w, "invalid application sent from client", err)
		return
	}
	if err := mapper.ValidateCreate(input); err != nil {
		s.badRequest(w, "invalid application sent from client", err)
		return
	}

	app := mapper.ToEntity(input)
	// the key is always assigned by the store
	app.ID = 0

	repos := s.newRepositories()
	repos.Application().Create(&app)
	if err := repos.Save(r.Context()); err != nil {
		s.storeFailure(w, r, "error creating application", err, "app", app)
		return
	}
	jsonResponse(w, http.StatusOK, mapper.ToDTO(app))
}

func (s *server) handlePatchApplication(w http.ResponseWriter, r *http.Request) {
	id, err := applicationID(r)
	if err != nil {
		s.badRequest(w, "invalid application id", err)
		return
	}
	input, err := decodeApplication(r)
	if err != nil {
		s.badRequest(w, "invalid application sent from client", err)
		return
	}
	if err := mapper.ValidatePatch(input); err != nil {
		s.badRequest(w, "invalid application sent from client", err)
		return
	}
	if input.ID > 0 && input.ID != id {
		s.badRequest(w, "application id mismatch", fmt.Errorf("%w: body id %d does not match path id %d", domain.ErrInvalidInput, input.ID, id))
		return
	}

	repos := s.newRepositories()
	app, ok := s.loadApplication(w, r, repos, id)
	if !ok {
		return
	}
	app = mapper.Merge(app, input)
	repos.Application().Update(&app)
	if err := repos.Save(r.Context()); err != nil {
		s.storeFailure(w, r, "error updating application", err, "id", id)
		return
	}
	jsonResponse(w, http.StatusOK, mapper.ToDTO(app))
}

func (s *server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := applicationID(r)
	if err != nil {
		s.badRequest(w, "invalid application id", err)
		return
	}

	repos := s.newRepositories()
	app, ok := s.loadApplication(w, r, repos, id)
	if !ok {
		return
	}
	repos.Application().Delete(&app)
	if err := repos.Save(r.Context()); err != nil {
		s.storeFailure(w, r, "error deleting application", err, "id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
