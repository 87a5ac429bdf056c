package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"whiskybase-backend/internal/domains/whisky/model"
	"whiskybase-backend/internal/shared/utils"
	"whiskybase-backend/pkg/cache"
)

const (
	cacheTTL       = 5 * time.Minute
	cacheKeyPrefix = "whisky:"
)

// postgresRepository - raw SQL with pgxpool, read-through Redis cache on the
// detail lookup.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) WhiskyRepository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const whiskyColumns = `
	id, name, distillery, country, region, type, age, abv, bottler, cask_type,
	color, nose, palate, finish, description, image_url, limited, discontinued,
	release_year, bottle_size, average_rating, total_reviews, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWhisky(row rowScanner) (*model.Whisky, error) {
	var w model.Whisky
	err := row.Scan(
		&w.ID, &w.Name, &w.Distillery, &w.Country, &w.Region, &w.Type,
		&w.Age, &w.ABV, &w.Bottler, pq.Array(&w.CaskType),
		&w.Color, &w.Nose, &w.Palate, &w.Finish, &w.Description, &w.ImageURL,
		&w.Limited, &w.Discontinued, &w.ReleaseYear, &w.BottleSize,
		&w.AverageRating, &w.TotalReviews, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if w.CaskType == nil {
		w.CaskType = []string{}
	}
	return &w, nil
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}

// List returns whiskies sorted by name ascending. Limit and offset come from
// the caller untouched; out-of-range values surface as storage errors.
func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]model.Whisky, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM whiskies`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM whiskies ORDER BY name ASC LIMIT $1 OFFSET $2`, whiskyColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list whiskies query failed: %w", err)
	}
	defer rows.Close()

	whiskies := make([]model.Whisky, 0, limit)
	for rows.Next() {
		w, err := scanWhisky(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan whisky failed: %w", err)
		}
		whiskies = append(whiskies, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return whiskies, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Whisky, error) {
	if r.cache != nil {
		var cached model.Whisky
		found, err := r.cache.Get(ctx, cacheKey(id), &cached)
		if err != nil {
			log.Warn().Err(err).Str("whisky_id", id.String()).Msg("Cache read failed")
		}
		if found {
			return &cached, nil
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM whiskies WHERE id = $1`, whiskyColumns)

	w, err := scanWhisky(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, model.ErrWhiskyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get whisky failed: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey(id), w, cacheTTL); err != nil {
			log.Warn().Err(err).Str("whisky_id", id.String()).Msg("Cache write failed")
		}
	}

	return w, nil
}

// Search matches the query as a case-insensitive substring against name,
// distillery, region OR country.
func (r *postgresRepository) Search(ctx context.Context, query string, limit int) ([]model.Whisky, error) {
	where := utils.JoinWithOr([]string{
		"name ILIKE $1",
		"distillery ILIKE $1",
		"region ILIKE $1",
		"country ILIKE $1",
	})

	sql := fmt.Sprintf(`SELECT %s FROM whiskies WHERE %s LIMIT $2`, whiskyColumns, where)

	rows, err := r.pool.Query(ctx, sql, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()

	whiskies := make([]model.Whisky, 0, limit)
	for rows.Next() {
		w, err := scanWhisky(rows)
		if err != nil {
			return nil, fmt.Errorf("scan whisky failed: %w", err)
		}
		whiskies = append(whiskies, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return whiskies, nil
}

func (r *postgresRepository) Create(ctx context.Context, w *model.Whisky) error {
	query := `
		INSERT INTO whiskies (
			id, name, distillery, country, region, type, age, abv, bottler, cask_type,
			color, nose, palate, finish, description, image_url, limited, discontinued,
			release_year, bottle_size, average_rating, total_reviews, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24
		)
	`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Name, w.Distillery, w.Country, w.Region, w.Type, w.Age, w.ABV,
		w.Bottler, pq.Array(w.CaskType),
		w.Color, w.Nose, w.Palate, w.Finish, w.Description, w.ImageURL,
		w.Limited, w.Discontinued, w.ReleaseYear, w.BottleSize,
		w.AverageRating, w.TotalReviews, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert whisky: %w", err)
	}

	return nil
}

// Update builds the SET clause from the non-nil patch fields and always
// refreshes updated_at.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, patch model.UpdateWhiskyRequest, updatedAt time.Time) (*model.Whisky, error) {
	sets := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Distillery != nil {
		addSet("distillery", *patch.Distillery)
	}
	if patch.Country != nil {
		addSet("country", *patch.Country)
	}
	if patch.Region != nil {
		addSet("region", *patch.Region)
	}
	if patch.Type != nil {
		addSet("type", *patch.Type)
	}
	if patch.Age != nil {
		addSet("age", *patch.Age)
	}
	if patch.ABV != nil {
		addSet("abv", *patch.ABV)
	}
	if patch.Bottler != nil {
		addSet("bottler", *patch.Bottler)
	}
	if patch.CaskType != nil {
		addSet("cask_type", pq.Array(patch.CaskType))
	}
	if patch.Color != nil {
		addSet("color", *patch.Color)
	}
	if patch.Nose != nil {
		addSet("nose", *patch.Nose)
	}
	if patch.Palate != nil {
		addSet("palate", *patch.Palate)
	}
	if patch.Finish != nil {
		addSet("finish", *patch.Finish)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		addSet("image_url", *patch.ImageURL)
	}
	if patch.Limited != nil {
		addSet("limited", *patch.Limited)
	}
	if patch.Discontinued != nil {
		addSet("discontinued", *patch.Discontinued)
	}
	if patch.ReleaseYear != nil {
		addSet("release_year", *patch.ReleaseYear)
	}
	if patch.BottleSize != nil {
		addSet("bottle_size", *patch.BottleSize)
	}

	// updated_at refreshes even when no other field changed.
	addSet("updated_at", updatedAt)

	query := fmt.Sprintf(`
		UPDATE whiskies
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, utils.JoinWithComma(sets), argIndex, whiskyColumns)
	args = append(args, id)

	w, err := scanWhisky(r.pool.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, model.ErrWhiskyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update whisky: %w", err)
	}

	r.invalidate(ctx, id)
	return w, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM whiskies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete whisky: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrWhiskyNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// UpdateRatingStats writes the derived aggregate. It does not touch
// updated_at: a rating recompute is not a content edit.
func (r *postgresRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE whiskies SET average_rating = $1, total_reviews = $2 WHERE id = $3`,
		averageRating, totalReviews, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update rating stats: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrWhiskyNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("whisky_id", id.String()).Msg("Cache invalidation failed")
	}
}
