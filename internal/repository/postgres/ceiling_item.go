package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/postgres"
	"github.com/quotedesk/quotedesk/internal/types"
)

type ceilingItemRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewCeilingItemRepository creates a postgres-backed ceiling item repository.
func NewCeilingItemRepository(client *postgres.Client, log *logger.Logger) quotation.CeilingItemRepository {
	return &ceilingItemRepository{client: client, log: log}
}

const ceilingItemColumns = `
	id, quotation_id, room_type, description, length, width, area,
	catalog_item_id, unit_rate,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *ceilingItemRepository) Create(ctx context.Context, item *quotation.CeilingItem) error {
	_, err := r.client.Conn(ctx).ExecContext(ctx, `
		INSERT INTO ceiling_items (`+ceilingItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		item.ID, item.QuotationID, item.RoomType, item.Description,
		item.Length, item.Width, item.Area,
		item.CatalogItemID, item.UnitRate,
		item.TenantID, item.Status, item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.UpdatedBy,
	)
	if err != nil {
		return wrapDBError(err, "failed to create ceiling item")
	}
	return nil
}

func (r *ceilingItemRepository) Get(ctx context.Context, id string) (*quotation.CeilingItem, error) {
	row := r.client.Conn(ctx).QueryRowContext(ctx, `
		SELECT `+ceilingItemColumns+`
		FROM ceiling_items
		WHERE id = $1 AND tenant_id = $2 AND status != $3
	`, id, types.GetTenantID(ctx), types.StatusDeleted)

	item, err := scanCeilingItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("ceiling item", id)
		}
		return nil, wrapDBError(err, "failed to get ceiling item")
	}
	return item, nil
}

func (r *ceilingItemRepository) ListByQuotation(ctx context.Context, quotationID string) ([]*quotation.CeilingItem, error) {
	rows, err := r.client.Conn(ctx).QueryContext(ctx, `
		SELECT `+ceilingItemColumns+`
		FROM ceiling_items
		WHERE quotation_id = $1 AND tenant_id = $2 AND status != $3
		ORDER BY created_at ASC
	`, quotationID, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return nil, wrapDBError(err, "failed to list ceiling items")
	}
	defer rows.Close()

	var items []*quotation.CeilingItem
	for rows.Next() {
		item, err := scanCeilingItem(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan ceiling item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to list ceiling items")
	}
	return items, nil
}

func (r *ceilingItemRepository) Update(ctx context.Context, item *quotation.CeilingItem) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE ceiling_items SET
			room_type = $1, description = $2, length = $3, width = $4,
			area = $5, catalog_item_id = $6, unit_rate = $7,
			updated_at = NOW(), updated_by = $8
		WHERE id = $9 AND tenant_id = $10 AND status != $11
	`,
		item.RoomType, item.Description, item.Length, item.Width,
		item.Area, item.CatalogItemID, item.UnitRate,
		types.GetUserID(ctx),
		item.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return wrapDBError(err, "failed to update ceiling item")
	}
	return requireRow(res, "ceiling item", item.ID)
}

func (r *ceilingItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE ceiling_items SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND status != $1
	`, types.StatusDeleted, id, types.GetTenantID(ctx))
	if err != nil {
		return wrapDBError(err, "failed to delete ceiling item")
	}
	return requireRow(res, "ceiling item", id)
}

func scanCeilingItem(row rowScanner) (*quotation.CeilingItem, error) {
	var item quotation.CeilingItem
	err := row.Scan(
		&item.ID, &item.QuotationID, &item.RoomType, &item.Description,
		&item.Length, &item.Width, &item.Area,
		&item.CatalogItemID, &item.UnitRate,
		&item.TenantID, &item.Status, &item.CreatedAt, &item.UpdatedAt, &item.CreatedBy, &item.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
