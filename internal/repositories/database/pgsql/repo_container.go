package pgsql

import (
	portsrepo "github.com/cbfacademy/iou_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IOURepo: newPgxIOURepository(dbPool),
	}
}
