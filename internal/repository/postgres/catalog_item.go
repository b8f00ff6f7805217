package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/postgres"
	"github.com/quotedesk/quotedesk/internal/types"
)

type catalogItemRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewCatalogItemRepository creates a postgres-backed catalog item repository.
func NewCatalogItemRepository(client *postgres.Client, log *logger.Logger) ratecard.CatalogRepository {
	return &catalogItemRepository{client: client, log: log}
}

const catalogItemColumns = `
	id, catalog, name, unit, unit_rate,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *catalogItemRepository) Create(ctx context.Context, item *ratecard.CatalogItem) error {
	_, err := r.client.Conn(ctx).ExecContext(ctx, `
		INSERT INTO catalog_items (`+catalogItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		item.ID, item.Catalog, item.Name, item.Unit, item.UnitRate,
		item.TenantID, item.Status, item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.UpdatedBy,
	)
	if err != nil {
		return wrapDBError(err, "failed to create catalog item")
	}
	return nil
}

func (r *catalogItemRepository) Get(ctx context.Context, id string) (*ratecard.CatalogItem, error) {
	row := r.client.Conn(ctx).QueryRowContext(ctx, `
		SELECT `+catalogItemColumns+`
		FROM catalog_items
		WHERE id = $1 AND tenant_id = $2 AND status != $3
	`, id, types.GetTenantID(ctx), types.StatusDeleted)

	item, err := scanCatalogItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("catalog item", id)
		}
		return nil, wrapDBError(err, "failed to get catalog item")
	}
	return item, nil
}

func (r *catalogItemRepository) List(ctx context.Context, filter *ratecard.Filter) ([]*ratecard.CatalogItem, error) {
	query := `
		SELECT ` + catalogItemColumns + `
		FROM catalog_items
		WHERE tenant_id = $1 AND status != $2`
	args := []interface{}{types.GetTenantID(ctx), types.StatusDeleted}

	if filter.Catalog != nil {
		args = append(args, *filter.Catalog)
		query += fmt.Sprintf(" AND catalog = $%d", len(args))
	}
	query += ` ORDER BY catalog, name`

	rows, err := r.client.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list catalog items")
	}
	defer rows.Close()

	var items []*ratecard.CatalogItem
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan catalog item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to list catalog items")
	}
	return items, nil
}

func (r *catalogItemRepository) Update(ctx context.Context, item *ratecard.CatalogItem) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE catalog_items SET
			name = $1, unit = $2, unit_rate = $3,
			updated_at = NOW(), updated_by = $4
		WHERE id = $5 AND tenant_id = $6 AND status != $7
	`,
		item.Name, item.Unit, item.UnitRate,
		types.GetUserID(ctx),
		item.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return wrapDBError(err, "failed to update catalog item")
	}
	return requireRow(res, "catalog item", item.ID)
}

func (r *catalogItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE catalog_items SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND status != $1
	`, types.StatusDeleted, id, types.GetTenantID(ctx))
	if err != nil {
		return wrapDBError(err, "failed to delete catalog item")
	}
	return requireRow(res, "catalog item", id)
}

func scanCatalogItem(row rowScanner) (*ratecard.CatalogItem, error) {
	var item ratecard.CatalogItem
	err := row.Scan(
		&item.ID, &item.Catalog, &item.Name, &item.Unit, &item.UnitRate,
		&item.TenantID, &item.Status, &item.CreatedAt, &item.UpdatedAt, &item.CreatedBy, &item.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
