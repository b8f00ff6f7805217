package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/postgres"
	"github.com/quotedesk/quotedesk/internal/types"
)

type brandAdderRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewBrandAdderRepository creates a postgres-backed brand adder repository.
func NewBrandAdderRepository(client *postgres.Client, log *logger.Logger) ratecard.AdderRepository {
	return &brandAdderRepository{client: client, log: log}
}

const brandAdderColumns = `
	id, finish_material, adder,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *brandAdderRepository) Create(ctx context.Context, adder *ratecard.BrandAdder) error {
	_, err := r.client.Conn(ctx).ExecContext(ctx, `
		INSERT INTO brand_adders (`+brandAdderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		adder.ID, adder.FinishMaterial, adder.Adder,
		adder.TenantID, adder.Status, adder.CreatedAt, adder.UpdatedAt, adder.CreatedBy, adder.UpdatedBy,
	)
	if err != nil {
		return wrapDBError(err, "failed to create brand adder")
	}
	return nil
}

func (r *brandAdderRepository) Get(ctx context.Context, id string) (*ratecard.BrandAdder, error) {
	row := r.client.Conn(ctx).QueryRowContext(ctx, `
		SELECT `+brandAdderColumns+`
		FROM brand_adders
		WHERE id = $1 AND tenant_id = $2 AND status != $3
	`, id, types.GetTenantID(ctx), types.StatusDeleted)

	adder, err := scanBrandAdder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("brand adder", id)
		}
		return nil, wrapDBError(err, "failed to get brand adder")
	}
	return adder, nil
}

func (r *brandAdderRepository) List(ctx context.Context, filter *ratecard.Filter) ([]*ratecard.BrandAdder, error) {
	query := `
		SELECT ` + brandAdderColumns + `
		FROM brand_adders
		WHERE tenant_id = $1 AND status != $2`
	args := []interface{}{types.GetTenantID(ctx), types.StatusDeleted}

	if filter.FinishMaterial != "" {
		args = append(args, filter.FinishMaterial)
		query += ` AND finish_material = $3`
	}
	query += ` ORDER BY finish_material`

	rows, err := r.client.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list brand adders")
	}
	defer rows.Close()

	var adders []*ratecard.BrandAdder
	for rows.Next() {
		adder, err := scanBrandAdder(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan brand adder")
		}
		adders = append(adders, adder)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to list brand adders")
	}
	return adders, nil
}

func (r *brandAdderRepository) Update(ctx context.Context, adder *ratecard.BrandAdder) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE brand_adders SET
			adder = $1, updated_at = NOW(), updated_by = $2
		WHERE id = $3 AND tenant_id = $4 AND status != $5
	`,
		adder.Adder, types.GetUserID(ctx),
		adder.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return wrapDBError(err, "failed to update brand adder")
	}
	return requireRow(res, "brand adder", adder.ID)
}

func (r *brandAdderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE brand_adders SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND status != $1
	`, types.StatusDeleted, id, types.GetTenantID(ctx))
	if err != nil {
		return wrapDBError(err, "failed to delete brand adder")
	}
	return requireRow(res, "brand adder", id)
}

func scanBrandAdder(row rowScanner) (*ratecard.BrandAdder, error) {
	var adder ratecard.BrandAdder
	err := row.Scan(
		&adder.ID, &adder.FinishMaterial, &adder.Adder,
		&adder.TenantID, &adder.Status, &adder.CreatedAt, &adder.UpdatedAt, &adder.CreatedBy, &adder.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &adder, nil
}
