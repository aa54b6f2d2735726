package pgsql

import (
	portsrepo "github.com/SscSPs/temple_admin_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TaxPolicyRepo:        newPgxTaxPolicyRepository(dbPool),
		RegistrantRecordRepo: newPgxRegistrantRecordRepository(dbPool),
	}
}
