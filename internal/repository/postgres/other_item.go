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

type otherItemRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewOtherItemRepository creates a postgres-backed other item repository.
func NewOtherItemRepository(client *postgres.Client, log *logger.Logger) quotation.OtherItemRepository {
	return &otherItemRepository{client: client, log: log}
}

const otherItemColumns = `
	id, quotation_id, item_type, description, value_type, value,
	unit_price, total,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *otherItemRepository) Create(ctx context.Context, item *quotation.OtherItem) error {
	_, err := r.client.Conn(ctx).ExecContext(ctx, `
		INSERT INTO other_items (`+otherItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		item.ID, item.QuotationID, item.ItemType, item.Description,
		item.ValueType, item.Value, item.UnitPrice, item.Total,
		item.TenantID, item.Status, item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.UpdatedBy,
	)
	if err != nil {
		return wrapDBError(err, "failed to create other item")
	}
	return nil
}

func (r *otherItemRepository) Get(ctx context.Context, id string) (*quotation.OtherItem, error) {
	row := r.client.Conn(ctx).QueryRowContext(ctx, `
		SELECT `+otherItemColumns+`
		FROM other_items
		WHERE id = $1 AND tenant_id = $2 AND status != $3
	`, id, types.GetTenantID(ctx), types.StatusDeleted)

	item, err := scanOtherItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("other item", id)
		}
		return nil, wrapDBError(err, "failed to get other item")
	}
	return item, nil
}

func (r *otherItemRepository) ListByQuotation(ctx context.Context, quotationID string) ([]*quotation.OtherItem, error) {
	rows, err := r.client.Conn(ctx).QueryContext(ctx, `
		SELECT `+otherItemColumns+`
		FROM other_items
		WHERE quotation_id = $1 AND tenant_id = $2 AND status != $3
		ORDER BY created_at ASC
	`, quotationID, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return nil, wrapDBError(err, "failed to list other items")
	}
	defer rows.Close()

	var items []*quotation.OtherItem
	for rows.Next() {
		item, err := scanOtherItem(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan other item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to list other items")
	}
	return items, nil
}

func (r *otherItemRepository) Update(ctx context.Context, item *quotation.OtherItem) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE other_items SET
			item_type = $1, description = $2, value_type = $3, value = $4,
			unit_price = $5, total = $6, updated_at = NOW(), updated_by = $7
		WHERE id = $8 AND tenant_id = $9 AND status != $10
	`,
		item.ItemType, item.Description, item.ValueType, item.Value,
		item.UnitPrice, item.Total, types.GetUserID(ctx),
		item.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return wrapDBError(err, "failed to update other item")
	}
	return requireRow(res, "other item", item.ID)
}

func (r *otherItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE other_items SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND status != $1
	`, types.StatusDeleted, id, types.GetTenantID(ctx))
	if err != nil {
		return wrapDBError(err, "failed to delete other item")
	}
	return requireRow(res, "other item", id)
}

func scanOtherItem(row rowScanner) (*quotation.OtherItem, error) {
	var item quotation.OtherItem
	err := row.Scan(
		&item.ID, &item.QuotationID, &item.ItemType, &item.Description,
		&item.ValueType, &item.Value, &item.UnitPrice, &item.Total,
		&item.TenantID, &item.Status, &item.CreatedAt, &item.UpdatedAt, &item.CreatedBy, &item.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
