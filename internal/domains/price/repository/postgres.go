package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiskybase-backend/internal/domains/price/model"
	"whiskybase-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) PriceRepository {
	return &postgresRepository{pool: pool}
}

const priceColumns = `
	id, whisky_id, retailer, price, currency, url, in_stock, last_checked,
	country, is_on_sale, regular_price`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrice(row rowScanner) (*model.Price, error) {
	var p model.Price
	err := row.Scan(
		&p.ID, &p.WhiskyID, &p.Retailer, &p.Price, &p.Currency, &p.URL,
		&p.InStock, &p.LastChecked, &p.Country, &p.IsOnSale, &p.RegularPrice,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) ListForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Price, error) {
	query := fmt.Sprintf(`SELECT %s FROM prices WHERE whisky_id = $1 ORDER BY price ASC`, priceColumns)

	rows, err := r.pool.Query(ctx, query, whiskyID)
	if err != nil {
		return nil, fmt.Errorf("list prices query failed: %w", err)
	}
	defer rows.Close()

	prices := []model.Price{}
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price failed: %w", err)
		}
		prices = append(prices, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return prices, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Price, error) {
	query := fmt.Sprintf(`SELECT %s FROM prices WHERE id = $1`, priceColumns)

	p, err := scanPrice(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, model.ErrPriceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get price failed: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Price) error {
	query := `
		INSERT INTO prices (
			id, whisky_id, retailer, price, currency, url, in_stock, last_checked,
			country, is_on_sale, regular_price
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.WhiskyID, p.Retailer, p.Price, p.Currency, p.URL,
		p.InStock, p.LastChecked, p.Country, p.IsOnSale, p.RegularPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to insert price: %w", err)
	}

	return nil
}

// Update builds the SET clause from the non-nil patch fields. last_checked is
// always refreshed; any write counts as a fresh observation of the quote.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, patch model.UpdatePriceRequest, lastChecked time.Time) (*model.Price, error) {
	sets := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Retailer != nil {
		addSet("retailer", *patch.Retailer)
	}
	if patch.Price != nil {
		addSet("price", *patch.Price)
	}
	if patch.Currency != nil {
		addSet("currency", *patch.Currency)
	}
	if patch.URL != nil {
		addSet("url", *patch.URL)
	}
	if patch.InStock != nil {
		addSet("in_stock", *patch.InStock)
	}
	if patch.Country != nil {
		addSet("country", *patch.Country)
	}
	if patch.IsOnSale != nil {
		addSet("is_on_sale", *patch.IsOnSale)
	}
	if patch.RegularPrice != nil {
		addSet("regular_price", *patch.RegularPrice)
	}

	addSet("last_checked", lastChecked)

	query := fmt.Sprintf(`
		UPDATE prices
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, utils.JoinWithComma(sets), argIndex, priceColumns)
	args = append(args, id)

	p, err := scanPrice(r.pool.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, model.ErrPriceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update price: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete price: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrPriceNotFound
	}

	return nil
}
