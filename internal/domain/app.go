package domain

import (
	"context"
	"iter"
)

// Application is a registered application: where it is served from, where
// it lives on disk and whether it runs with debugging enabled.
type Application struct {
	ID            int    `db:"id"`
	URL           string `db:"url"`
	PathLocal     string `db:"path_local"`
	DebuggingMode bool   `db:"debugging_mode"`
}

// Repository is the data access contract for one entity type.
// Create, Update and Delete only stage changes; they become durable when the
// owning RepositoryWrapper is saved.
type Repository[T any] interface {
	// FindAll returns a lazy sequence over every row. Each range over the
	// sequence queries the store again.
	FindAll(ctx context.Context) iter.Seq2[T, error]
	// FindByID reports false, with a nil error, when no row has the id.
	FindByID(ctx context.Context, id int) (T, bool, error)
	Create(entity *T)
	Update(entity *T)
	Delete(entity *T)
}

type ApplicationRepository interface {
	Repository[Application]
}

// RepositoryWrapper groups the repositories sharing one unit of work.
type RepositoryWrapper interface {
	Application() ApplicationRepository
	// Save commits every staged operation atomically.
	Save(ctx context.Context) error
	SaveAsync(ctx context.Context) <-chan error
}
