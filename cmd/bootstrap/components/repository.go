package components

import (
	"lendshare/internal/infra"
	"lendshare/internal/infra/readstore"
	repo_impl "lendshare/internal/infra/repository"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(pool *pgxpool.Pool) infra.DBTX { return pool },

		// Read-side stores. ItemReadStore stays concrete because the request
		// store composes it for answering items.
		readstore.NewItemReadStore,
		func(s *readstore.ItemReadStore) queries.ItemReadStore { return s },
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),

		// Write-side repositories; user and item double as command-side readers.
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.UserReader)),
		),
		fx.Annotate(
			repo_impl.NewItemRepository,
			fx.As(new(commands.ItemRepository)),
			fx.As(new(commands.ItemReader)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewCommentRepository,
			fx.As(new(commands.CommentRepository)),
		),
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
		),
	),
)
