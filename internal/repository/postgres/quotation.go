package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/quotedesk/quotedesk/internal/domain/quotation"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/postgres"
	"github.com/quotedesk/quotedesk/internal/types"
)

type quotationRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

// NewQuotationRepository creates a postgres-backed quotation repository.
func NewQuotationRepository(client *postgres.Client, log *logger.Logger) quotation.Repository {
	return &quotationRepository{client: client, log: log}
}

const quotationColumns = `
	id, quotation_number, client_name, client_address, project_name,
	site_address, discount_type, discount_value, quote_status,
	annexure_interiors, annexure_false_ceiling, terms,
	interiors_subtotal, fc_subtotal, grand_subtotal, totals_updated_at,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *quotationRepository) Create(ctx context.Context, q *quotation.Quotation) error {
	_, err := r.client.Conn(ctx).ExecContext(ctx, `
		INSERT INTO quotations (`+quotationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`,
		q.ID, q.QuotationNumber, q.ClientName, q.ClientAddress, q.ProjectName,
		q.SiteAddress, q.DiscountType, q.DiscountValue, q.QuoteStatus,
		q.Annexures.Interiors, q.Annexures.FalseCeiling, q.Terms,
		q.Totals.InteriorsSubtotal, q.Totals.FCSubtotal, q.Totals.GrandSubtotal, q.Totals.UpdatedAt,
		q.TenantID, q.Status, q.CreatedAt, q.UpdatedAt, q.CreatedBy, q.UpdatedBy,
	)
	if err != nil {
		return wrapDBError(err, "failed to create quotation")
	}
	return nil
}

func (r *quotationRepository) Get(ctx context.Context, id string) (*quotation.Quotation, error) {
	row := r.client.Conn(ctx).QueryRowContext(ctx, `
		SELECT `+quotationColumns+`
		FROM quotations
		WHERE id = $1 AND tenant_id = $2 AND status != $3
	`, id, types.GetTenantID(ctx), types.StatusDeleted)

	q, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("quotation", id)
		}
		return nil, wrapDBError(err, "failed to get quotation")
	}
	return q, nil
}

func (r *quotationRepository) List(ctx context.Context, filter *types.QuotationFilter) ([]*quotation.Quotation, error) {
	query, args := buildQuotationQuery(ctx, `SELECT `+quotationColumns+` FROM quotations`, filter)
	query += ` ORDER BY created_at DESC`

	if limit := filter.GetLimit(); limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, filter.GetOffset())
	}

	rows, err := r.client.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to list quotations")
	}
	defer rows.Close()

	var quotations []*quotation.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, wrapDBError(err, "failed to scan quotation")
		}
		quotations = append(quotations, q)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err, "failed to list quotations")
	}
	return quotations, nil
}

func (r *quotationRepository) Count(ctx context.Context, filter *types.QuotationFilter) (int, error) {
	query, args := buildQuotationQuery(ctx, `SELECT COUNT(*) FROM quotations`, filter)

	var count int
	if err := r.client.Conn(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapDBError(err, "failed to count quotations")
	}
	return count, nil
}

func (r *quotationRepository) Update(ctx context.Context, q *quotation.Quotation) error {
	res, err := r.client.Conn(ctx).ExecContext(ctx, `
		UPDATE quotations SET
			client_name = $1, client_address = $2, project_name = $3,
			site_address = $4, discount_type = $5, discount_value = $6,
			quote_status = $7, annexure_interiors = $8,
			annexure_false_ceiling = $9, terms = $10,
			updated_at = NOW(), updated_by = $11
		WHERE id = $12 AND tenant_id = $13 AND status != $14
	`,
		q.ClientName, q.ClientAddress, q.ProjectName,
		q.SiteAddress, q.DiscountType, q.DiscountValue,
		q.QuoteStatus, q.Annexures.Interiors,
		q.Annexures.FalseCeiling, q.Terms,
		types.GetUserID(ctx),
		q.ID, types.GetTenantID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return wrapDBError(err, "failed to update quotation")
	}
	return requireRow(res, "quotation", q.ID)
}

// UpdateTotals persists only the derived totals snapshot. The write runs in a
// transaction under a per-quotation advisory lock so concurrent item
// mutations cannot interleave their recomputations.
func (r *quotationRepository) UpdateTotals(ctx context.Context, id string, totals quotation.Totals) error {
	return r.client.WithTx(ctx, func(txCtx context.Context) error {
		if err := r.client.LockKey(txCtx, "quotation_totals:"+id); err != nil {
			return wrapDBError(err, "failed to lock quotation totals")
		}

		res, err := r.client.Conn(txCtx).ExecContext(txCtx, `
			UPDATE quotations SET
				interiors_subtotal = $1, fc_subtotal = $2,
				grand_subtotal = $3, totals_updated_at = $4,
				updated_at = NOW()
			WHERE id = $5 AND tenant_id = $6 AND status != $7
		`,
			totals.InteriorsSubtotal, totals.FCSubtotal,
			totals.GrandSubtotal, totals.UpdatedAt,
			id, types.GetTenantID(txCtx), types.StatusDeleted,
		)
		if err != nil {
			return wrapDBError(err, "failed to update quotation totals")
		}
		return requireRow(res, "quotation", id)
	})
}

func (r *quotationRepository) Delete(ctx context.Context, id string) error {
	return r.client.WithTx(ctx, func(txCtx context.Context) error {
		conn := r.client.Conn(txCtx)
		res, err := conn.ExecContext(txCtx, `
			UPDATE quotations SET status = $1, updated_at = NOW()
			WHERE id = $2 AND tenant_id = $3 AND status != $1
		`, types.StatusDeleted, id, types.GetTenantID(txCtx))
		if err != nil {
			return wrapDBError(err, "failed to delete quotation")
		}
		if err := requireRow(res, "quotation", id); err != nil {
			return err
		}

		// Line items go with their quotation.
		for _, table := range []string{"interior_items", "ceiling_items", "other_items"} {
			if _, err := conn.ExecContext(txCtx, `
				UPDATE `+table+` SET status = $1, updated_at = NOW()
				WHERE quotation_id = $2 AND tenant_id = $3
			`, types.StatusDeleted, id, types.GetTenantID(txCtx)); err != nil {
				return wrapDBError(err, "failed to delete quotation items")
			}
		}
		return nil
	})
}

func buildQuotationQuery(ctx context.Context, base string, filter *types.QuotationFilter) (string, []interface{}) {
	query := base + ` WHERE tenant_id = $1 AND status != $2`
	args := []interface{}{types.GetTenantID(ctx), types.StatusDeleted}

	if len(filter.QuotationIDs) > 0 {
		args = append(args, pq.Array(filter.QuotationIDs))
		query += fmt.Sprintf(" AND id = ANY($%d)", len(args))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, pq.Array(statuses))
		query += fmt.Sprintf(" AND quote_status = ANY($%d)", len(args))
	}
	if filter.ClientName != "" {
		args = append(args, "%"+filter.ClientName+"%")
		query += fmt.Sprintf(" AND client_name ILIKE $%d", len(args))
	}
	return query, args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuotation(row rowScanner) (*quotation.Quotation, error) {
	var q quotation.Quotation
	err := row.Scan(
		&q.ID, &q.QuotationNumber, &q.ClientName, &q.ClientAddress, &q.ProjectName,
		&q.SiteAddress, &q.DiscountType, &q.DiscountValue, &q.QuoteStatus,
		&q.Annexures.Interiors, &q.Annexures.FalseCeiling, &q.Terms,
		&q.Totals.InteriorsSubtotal, &q.Totals.FCSubtotal, &q.Totals.GrandSubtotal, &q.Totals.UpdatedAt,
		&q.TenantID, &q.Status, &q.CreatedAt, &q.UpdatedAt, &q.CreatedBy, &q.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
