package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bjarke-xyz/applications-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type operation struct {
	name string
	run  func(ctx context.Context, tx pgx.Tx) error
}

// unitOfWork holds the operations staged since the last save.
// It is not safe for concurrent use; a wrapper belongs to one request.
type unitOfWork struct {
	pending []operation
}

func (u *unitOfWork) stage(op operation) {
	u.pending = append(u.pending, op)
}

func (u *unitOfWork) drain() []operation {
	ops := u.pending
	u.pending = nil
	return ops
}

// Wrapper groups the repositories of one unit of work.
type Wrapper struct {
	conn        Connection
	uow         *unitOfWork
	application *postgresAppRepository
}

var _ domain.RepositoryWrapper = (*Wrapper)(nil)

func NewWrapper(conn Connection) *Wrapper {
	uow := &unitOfWork{}
	return &Wrapper{
		conn:        conn,
		uow:         uow,
		application: newPostgresApp(conn, uow),
	}
}

// Application implements domain.RepositoryWrapper.
func (w *Wrapper) Application() domain.ApplicationRepository {
	return w.application
}

// Save implements domain.RepositoryWrapper. The staged operations are
// discarded whether or not the commit succeeds.
func (w *Wrapper) Save(ctx context.Context) (err error) {
	ops := w.uow.drain()
	if len(ops) == 0 {
		return nil
	}

	tx, err := w.conn.Begin(ctx)
	if err != nil {
		return translateError("begin transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	for _, op := range ops {
		if err = op.run(ctx, tx); err != nil {
			return translateError(op.name, err)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return translateError("commit", err)
	}
	return nil
}

// SaveAsync implements domain.RepositoryWrapper.
func (w *Wrapper) SaveAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- w.Save(ctx)
	}()
	return done
}

func translateError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		op = fmt.Sprintf("%s: unique violation on %s", op, pgErr.ConstraintName)
	}
	return &domain.PersistenceError{Op: op, Err: err}
}
