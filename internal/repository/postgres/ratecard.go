package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/postgres"
	"github.com/quotedesk/quotedesk/internal/types"
)

type rateEntryRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewRateEntryRepository creates a postgres-backed rate entry repository.
func NewRateEntryRepository(client *postgres.Client, log *logger.Logger) ratecard.Repository {
	return &rateEntryRepository{client: client, log: log}
}

const rateEntryColumns = `
	id, build_type, core_material, finish_material, hardware_brand, base_rate,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *rateEntryRepository) Create(ctx context.Context, entry *ratecard.RateEntry) error {
	_, err := r.client.Conn(ctx).ExecContext(ctx, `
		INSERT INTO rate_entries (`+rateEntryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		entry.ID, entry.BuildType, entry.CoreMaterial, entry.FinishMaterial,
		entry.HardwareBrand, entry.BaseRate,
		entry.TenantID, entry.Status, entry.CreatedAt, entry.UpdatedAt, entry.CreatedBy, entry.UpdatedBy,
	)
	if err != nil {
		return wrapDBError(err, "failed to create rate entry")
	}
	return nil
}

func (r *rateEntryRepository) Get(ctx context.Context, id string) (*ratecard.RateEntry, error) {
	row := r.client.Conn(ctx).QueryRowContext(ctx, `
		SELECT `+rateEntryColumns+`
		FROM rate_entries
		WHERE id = $1 AND tenant_id = $2 AND status != $3
	`, id, types.GetTenantID(ctx), types.StatusDeleted)

	entry, err := scanRateEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("rate entry", id)
		}
		return nil, wrapDBError(err, "failed to get rate entry")
	}
	return entry, nil
}

func (r *rateEntryRepository) List(ctx context.Context, filter *ratecard.Filter) ([]*ratecard.RateEntry, error) {
	query, args := buildRateEntryQuery(ctx, `SELECT `+rateEntryColumns+` FROM rate_entries`, filter)
	query += ` ORDER BY build_type, core_material, finish_material, hardware_brand`

	if limit := filter.GetLimit(); limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, filter.GetOffset())
	}

	rows, err := r.client.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list rate entries")
	}
	defer rows.Close()

	var entries []*ratecard.RateEntry
	for rows.Next() {
		entry, err := scanRateEntry(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan rate entry")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to list rate entries")
	}
	return entries, nil
}

func (r *rateEntryRepository) Count(ctx context.Context, filter *ratecard.Filter) (int, error) {
	query, args := buildRateEntryQuery(ctx, `SELECT COUNT(*) FROM rate_entries`, filter)

	var count int
	if err := r.client.Conn(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapDBError(err, "failed to count rate entries")
	}
	return count, nil
}

func (r *rateEntryRepository) Update(ctx context.Context, entry *ratecard.RateEntry) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE rate_entries SET
			base_rate = $1, updated_at = NOW(), updated_by = $2
		WHERE id = $3 AND tenant_id = $4 AND status != $5
	`,
		entry.BaseRate, types.GetUserID(ctx),
		entry.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return wrapDBError(err, "failed to update rate entry")
	}
	return requireRow(res, "rate entry", entry.ID)
}

func (r *rateEntryRepository) UpdateBaseRate(ctx context.Context, id string, baseRate decimal.Decimal) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE rate_entries SET base_rate = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND status != $4
	`, baseRate, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return wrapDBError(err, "failed to update base rate")
	}
	return requireRow(res, "rate entry", id)
}

func (r *rateEntryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE rate_entries SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND status != $1
	`, types.StatusDeleted, id, types.GetTenantID(ctx))
	if err != nil {
		return wrapDBError(err, "failed to delete rate entry")
	}
	return requireRow(res, "rate entry", id)
}

func buildRateEntryQuery(ctx context.Context, base string, filter *ratecard.Filter) (string, []interface{}) {
	query := base + ` WHERE tenant_id = $1 AND status != $2`
	args := []interface{}{types.GetTenantID(ctx), types.StatusDeleted}

	if filter.BuildType != nil {
		args = append(args, *filter.BuildType)
		query += fmt.Sprintf(" AND build_type = $%d", len(args))
	}
	if filter.CoreMaterial != "" {
		args = append(args, filter.CoreMaterial)
		query += fmt.Sprintf(" AND core_material = $%d", len(args))
	}
	if filter.FinishMaterial != "" {
		args = append(args, filter.FinishMaterial)
		query += fmt.Sprintf(" AND finish_material = $%d", len(args))
	}
	if filter.HardwareBrand != "" {
		args = append(args, filter.HardwareBrand)
		query += fmt.Sprintf(" AND hardware_brand = $%d", len(args))
	}
	return query, args
}

func scanRateEntry(row rowScanner) (*ratecard.RateEntry, error) {
	var entry ratecard.RateEntry
	err := row.Scan(
		&entry.ID, &entry.BuildType, &entry.CoreMaterial, &entry.FinishMaterial,
		&entry.HardwareBrand, &entry.BaseRate,
		&entry.TenantID, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt, &entry.CreatedBy, &entry.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
