package repository

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/bjarke-xyz/applications-api/internal/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// entityTable describes how an entity is laid out in its table.
// The key column is always "id" and is assigned by the database.
type entityTable[T any] struct {
	name    string
	columns []string
	key     func(*T) *int
	values  func(*T) []any
}

func (t entityTable[T]) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(t.columns, ", "), t.name)
}

func (t entityTable[T]) insertSQL() string {
	placeholders := make([]string, len(t.columns))
	for i := range t.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "))
}

func (t entityTable[T]) updateSQL() string {
	assignments := make([]string, len(t.columns))
	for i, c := range t.columns {
		assignments[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		t.name, strings.Join(assignments, ", "), len(t.columns)+1)
}

func (t entityTable[T]) deleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name)
}

// tableRepository reads straight from the connection and stages writes in
// the unit of work shared with its wrapper.
type tableRepository[T any] struct {
	conn  Connection
	uow   *unitOfWork
	table entityTable[T]
}

func newTableRepository[T any](conn Connection, uow *unitOfWork, table entityTable[T]) *tableRepository[T] {
	return &tableRepository[T]{conn: conn, uow: uow, table: table}
}

func (r *tableRepository[T]) FindAll(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		rows, err := r.conn.Query(ctx, r.table.selectSQL()+" ORDER BY id")
		if err != nil {
			yield(zero, translateError("select from "+r.table.name, err))
			return
		}
		defer rows.Close()

		scanner := pgxscan.NewRowScanner(rows)
		for rows.Next() {
			var entity T
			if err := scanner.Scan(&entity); err != nil {
				yield(zero, translateError("scan "+r.table.name, err))
				return
			}
			if !yield(entity, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(zero, translateError("select from "+r.table.name, err))
		}
	}
}

func (r *tableRepository[T]) FindByID(ctx context.Context, id int) (T, bool, error) {
	var entity T
	err := pgxscan.Get(ctx, r.conn, &entity, r.table.selectSQL()+" WHERE id = $1", id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return entity, false, nil
		}
		return entity, false, translateError("select from "+r.table.name, err)
	}
	return entity, true, nil
}

// Create stages an insert. The entity is read when the unit is saved, and
// its key is filled in from the database afterwards.
func (r *tableRepository[T]) Create(entity *T) {
	r.uow.stage(operation{
		name: "insert into " + r.table.name,
		run: func(ctx context.Context, tx pgx.Tx) error {
			return tx.QueryRow(ctx, r.table.insertSQL(), r.table.values(entity)...).Scan(r.table.key(entity))
		},
	})
}

func (r *tableRepository[T]) Update(entity *T) {
	r.uow.stage(operation{
		name: "update " + r.table.name,
		run: func(ctx context.Context, tx pgx.Tx) error {
			id := *r.table.key(entity)
			args := append(r.table.values(entity), id)
			tag, err := tx.Exec(ctx, r.table.updateSQL(), args...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%s %d: %w", r.table.name, id, domain.ErrNotFound)
			}
			return nil
		},
	})
}

func (r *tableRepository[T]) Delete(entity *T) {
	r.uow.stage(operation{
		name: "delete from " + r.table.name,
		run: func(ctx context.Context, tx pgx.Tx) error {
			id := *r.table.key(entity)
			tag, err := tx.Exec(ctx, r.table.deleteSQL(), id)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%s %d: %w", r.table.name, id, domain.ErrNotFound)
			}
			return nil
		},
	})
}
