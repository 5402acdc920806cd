package repository

import (
	"github.com/bjarke-xyz/applications-api/internal/domain"
)

var applicationTable = entityTable[domain.Application]{
	name:    "applications",
	columns: []string{"url", "path_local", "debugging_mode"},
	key: func(app *domain.Application) *int {
		return &app.ID
	},
	values: func(app *domain.Application) []any {
		return []any{app.URL, app.PathLocal, app.DebuggingMode}
	},
}

type postgresAppRepository struct {
	*tableRepository[domain.Application]
}

var _ domain.ApplicationRepository = (*postgresAppRepository)(nil)

func newPostgresApp(conn Connection, uow *unitOfWork) *postgresAppRepository {
	return &postgresAppRepository{newTableRepository(conn, uow, applicationTable)}
}
