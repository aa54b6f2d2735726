package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
)

// RecordCursor marks the last row of a page; listing resumes strictly after it.
type RecordCursor struct {
	Year      int
	CreatedAt time.Time
	RecordID  string
}

// RecordListFilter narrows a registrant record listing.
type RecordListFilter struct {
	Mobile *string // Normalized mobile, nil for all
	Limit  int
	After  *RecordCursor
}

// RegistrantRecordReader defines read operations for registrant year records
type RegistrantRecordReader interface {
	// FindRecordsByMobile returns every record filed under a normalized mobile, ordered by year ascending.
	FindRecordsByMobile(ctx context.Context, templeID string, mobile string) ([]domain.RegistrantYearRecord, error)

	// ListRecords pages through records, newest year first.
	ListRecords(ctx context.Context, templeID string, filter RecordListFilter) ([]domain.RegistrantYearRecord, error)
}

// RegistrantRecordWriter defines write operations for registrant year records
type RegistrantRecordWriter interface {
	// SaveRecord inserts a frozen snapshot and marks the supersedes records as
	// carried by it, atomically. Returns apperrors.ErrDuplicate if (temple, mobile, year)
	// exists or a superseded record was already carried by another filing.
	SaveRecord(ctx context.Context, record domain.RegistrantYearRecord, supersedes []string) error
}

// RegistrantRecordRepositoryFacade combines all registrant record repository interfaces
type RegistrantRecordRepositoryFacade interface {
	RegistrantRecordReader
	RegistrantRecordWriter
}

// RegistrantRecordRepositoryWithTx extends RegistrantRecordRepositoryFacade with transaction capabilities
type RegistrantRecordRepositoryWithTx interface {
	RegistrantRecordRepositoryFacade
	TransactionManager
}
