package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/postgres"
	"github.com/quotedesk/quotedesk/internal/types"
)

type interiorItemRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewInteriorItemRepository creates a postgres-backed interior item repository.
func NewInteriorItemRepository(client *postgres.Client, log *logger.Logger) quotation.InteriorItemRepository {
	return &interiorItemRepository{client: client, log: log}
}

const interiorItemColumns = `
	id, quotation_id, room_type, description, length, height, width, sqft,
	core_material, finish_material, hardware_brand, build_type,
	unit_price, rate_auto, rate_override, is_rate_overridden, total_price,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *interiorItemRepository) Create(ctx context.Context, item *quotation.InteriorItem) error {
	_, err := r.client.Conn(ctx).ExecContext(ctx, `
		INSERT INTO interior_items (`+interiorItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`,
		item.ID, item.QuotationID, item.RoomType, item.Description,
		item.Length, item.Height, item.Width, item.Sqft,
		item.CoreMaterial, item.FinishMaterial, item.HardwareBrand, item.BuildType,
		item.UnitPrice, item.RateAuto, decimalPtr(item.RateOverride), item.IsRateOverridden, item.TotalPrice,
		item.TenantID, item.Status, item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.UpdatedBy,
	)
	if err != nil {
		return wrapDBError(err, "failed to create interior item")
	}
	return nil
}

func (r *interiorItemRepository) Get(ctx context.Context, id string) (*quotation.InteriorItem, error) {
	row := r.client.Conn(ctx).QueryRowContext(ctx, `
		SELECT `+interiorItemColumns+`
		FROM interior_items
		WHERE id = $1 AND tenant_id = $2 AND status != $3
	`, id, types.GetTenantID(ctx), types.StatusDeleted)

	item, err := scanInteriorItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("interior item", id)
		}
		return nil, wrapDBError(err, "failed to get interior item")
	}
	return item, nil
}

func (r *interiorItemRepository) ListByQuotation(ctx context.Context, quotationID string) ([]*quotation.InteriorItem, error) {
	rows, err := r.client.Conn(ctx).QueryContext(ctx, `
		SELECT `+interiorItemColumns+`
		FROM interior_items
		WHERE quotation_id = $1 AND tenant_id = $2 AND status != $3
		ORDER BY created_at ASC
	`, quotationID, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return nil, wrapDBError(err, "failed to list interior items")
	}
	defer rows.Close()

	var items []*quotation.InteriorItem
	for rows.Next() {
		item, err := scanInteriorItem(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan interior item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to list interior items")
	}
	return items, nil
}

func (r *interiorItemRepository) Update(ctx context.Context, item *quotation.InteriorItem) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE interior_items SET
			room_type = $1, description = $2, length = $3, height = $4,
			width = $5, sqft = $6, core_material = $7, finish_material = $8,
			hardware_brand = $9, build_type = $10, unit_price = $11,
			rate_auto = $12, rate_override = $13, is_rate_overridden = $14,
			total_price = $15, updated_at = NOW(), updated_by = $16
		WHERE id = $17 AND tenant_id = $18 AND status != $19
	`,
		item.RoomType, item.Description, item.Length, item.Height,
		item.Width, item.Sqft, item.CoreMaterial, item.FinishMaterial,
		item.HardwareBrand, item.BuildType, item.UnitPrice,
		item.RateAuto, decimalPtr(item.RateOverride), item.IsRateOverridden,
		item.TotalPrice, types.GetUserID(ctx),
		item.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return wrapDBError(err, "failed to update interior item")
	}
	return requireRow(res, "interior item", item.ID)
}

func (r *interiorItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE interior_items SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3 AND status != $1
	`, types.StatusDeleted, id, types.GetTenantID(ctx))
	if err != nil {
		return wrapDBError(err, "failed to delete interior item")
	}
	return requireRow(res, "interior item", id)
}

func scanInteriorItem(row rowScanner) (*quotation.InteriorItem, error) {
	var item quotation.InteriorItem
	var override decimal.NullDecimal
	err := row.Scan(
		&item.ID, &item.QuotationID, &item.RoomType, &item.Description,
		&item.Length, &item.Height, &item.Width, &item.Sqft,
		&item.CoreMaterial, &item.FinishMaterial, &item.HardwareBrand, &item.BuildType,
		&item.UnitPrice, &item.RateAuto, &override, &item.IsRateOverridden, &item.TotalPrice,
		&item.TenantID, &item.Status, &item.CreatedAt, &item.UpdatedAt, &item.CreatedBy, &item.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if override.Valid {
		item.RateOverride = &override.Decimal
	}
	return &item, nil
}
