package pgsql

import (
	portsrepo "github.com/dare2earn/d2e_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	sessionRepo := newPgxSessionRepository(dbPool)
	dareRepo := newPgxDareRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		DareRepo:     dareRepo,
		CategoryRepo: categoryRepo,
		LedgerRepo:   ledgerRepo,
	}
}
