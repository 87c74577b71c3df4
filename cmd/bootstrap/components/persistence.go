package components

import (
	"lucky-draw/internal/infra/docstore"
	"lucky-draw/internal/infra/readstore"
	sqlc "lucky-draw/internal/infra/sqlc/generated"
	"lucky-draw/internal/infra/uow"
	"lucky-draw/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresModule = fx.Module("persistence/postgres",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

var FirestoreModule = fx.Module("persistence/firestore",
	fx.Provide(
		docstore.NewFirestoreUoW,
		fx.Annotate(
			docstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
