package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/temple_admin_app/internal/apperrors"
	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/temple_admin_app/internal/core/ports/repositories"
	"github.com/SscSPs/temple_admin_app/internal/models"
	"github.com/SscSPs/temple_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRegistrantRecordRepository struct {
	BaseRepository
}

// newPgxRegistrantRecordRepository creates a new repository for registrant year records.
func newPgxRegistrantRecordRepository(pool *pgxpool.Pool) portsrepo.RegistrantRecordRepositoryWithTx {
	return &PgxRegistrantRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RegistrantRecordRepositoryWithTx = (*PgxRegistrantRecordRepository)(nil)

const registrantRecordSelect = `
SELECT
	record_id, temple_id, mobile, registrant_name, year, tax_amount, amount_paid, outstanding_amount,
	superseded_by, created_at, created_by, last_updated_at, last_updated_by, version
FROM tax_registrations
`

func scanRegistrantRecord(row pgx.CollectableRow) (models.RegistrantYearRecord, error) {
	var rec models.RegistrantYearRecord
	err := row.Scan(
		&rec.RecordID,
		&rec.TempleID,
		&rec.Mobile,
		&rec.RegistrantName,
		&rec.Year,
		&rec.TaxAmount,
		&rec.AmountPaid,
		&rec.OutstandingAmount,
		&rec.SupersededBy,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.LastUpdatedAt,
		&rec.LastUpdatedBy,
		&rec.Version,
	)
	return rec, err
}

func (r *PgxRegistrantRecordRepository) getRecords(ctx context.Context, filterQuery string, args ...any) ([]domain.RegistrantYearRecord, error) {
	rows, err := r.Pool.Query(ctx, registrantRecordSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query tax registrations", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, scanRegistrantRecord)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.RegistrantYearRecord{}, nil
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect tax registration rows", err)
	}
	return mapping.ToDomainRegistrantYearRecordSlice(modelRecords), nil
}

// FindRecordsByMobile returns all of a registrant's records, oldest year first.
func (r *PgxRegistrantRecordRepository) FindRecordsByMobile(ctx context.Context, templeID string, mobile string) ([]domain.RegistrantYearRecord, error) {
	return r.getRecords(ctx,
		`WHERE temple_id = $1 AND mobile = $2 ORDER BY year ASC, last_updated_at ASC, record_id ASC`,
		templeID, mobile)
}

// ListRecords returns one page of records ordered by year, created_at and record_id, all descending.
func (r *PgxRegistrantRecordRepository) ListRecords(ctx context.Context, templeID string, filter portsrepo.RecordListFilter) ([]domain.RegistrantYearRecord, error) {
	conditions := []string{"temple_id = $1"}
	args := []any{templeID}

	if filter.Mobile != nil {
		args = append(args, *filter.Mobile)
		conditions = append(conditions, fmt.Sprintf("mobile = $%d", len(args)))
	}
	if filter.After != nil {
		args = append(args, filter.After.Year, filter.After.CreatedAt, filter.After.RecordID)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(year, created_at, record_id) < ($%d, $%d, $%d)", n-2, n-1, n))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)

	query := "WHERE " + strings.Join(conditions, " AND ") +
		fmt.Sprintf(" ORDER BY year DESC, created_at DESC, record_id DESC LIMIT $%d", len(args))
	return r.getRecords(ctx, query, args...)
}

// SaveRecord inserts a new registration snapshot and, in the same transaction,
// marks the records in supersedes as carried by it.
func (r *PgxRegistrantRecordRepository) SaveRecord(ctx context.Context, record domain.RegistrantYearRecord, supersedes []string) error {
	m := mapping.ToModelRegistrantYearRecord(record)
	return r.WithinTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO tax_registrations (
				record_id, temple_id, mobile, registrant_name, year, tax_amount, amount_paid, outstanding_amount,
				created_at, created_by, last_updated_at, last_updated_by, version
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1);
		`,
			m.RecordID,
			m.TempleID,
			m.Mobile,
			m.RegistrantName,
			m.Year,
			m.TaxAmount,
			m.AmountPaid,
			m.OutstandingAmount,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.NewConflictError(fmt.Sprintf("a tax registration for year %d already exists for this mobile", m.Year))
			}
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to save tax registration "+m.RecordID, err)
		}

		if len(supersedes) == 0 {
			return nil
		}
		tag, err := tx.Exec(ctx, `
			UPDATE tax_registrations
			SET superseded_by = $1, last_updated_at = $2, last_updated_by = $3, version = version + 1
			WHERE temple_id = $4 AND record_id = ANY($5) AND superseded_by IS NULL;
		`, m.RecordID, m.CreatedAt, m.CreatedBy, m.TempleID, supersedes)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to supersede earlier tax registrations", err)
		}
		if tag.RowsAffected() != int64(len(supersedes)) {
			// another filing took these arrears over first
			return apperrors.NewConflictError("earlier tax registrations changed while saving; recalculate and submit again")
		}
		return nil
	})
}
