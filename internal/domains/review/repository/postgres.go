package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiskybase-backend/internal/domains/review/model"
	"whiskybase-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresRepository{pool: pool}
}

const reviewColumns = `
	id, whisky_id, user_id, username, rating, title, comment,
	nose, palate, finish, value, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*model.Review, error) {
	var rv model.Review
	err := row.Scan(
		&rv.ID, &rv.WhiskyID, &rv.UserID, &rv.Username, &rv.Rating,
		&rv.Title, &rv.Comment, &rv.Nose, &rv.Palate, &rv.Finish, &rv.Value,
		&rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *postgresRepository) ListForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE whisky_id = $1 ORDER BY created_at DESC`, reviewColumns)

	rows, err := r.pool.Query(ctx, query, whiskyID)
	if err != nil {
		return nil, fmt.Errorf("list reviews query failed: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return reviews, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE id = $1`, reviewColumns)

	rv, err := scanReview(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, model.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get review failed: %w", err)
	}

	return rv, nil
}

func (r *postgresRepository) ListRatings(ctx context.Context, whiskyID uuid.UUID) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT rating FROM reviews WHERE whisky_id = $1`, whiskyID)
	if err != nil {
		return nil, fmt.Errorf("list ratings query failed: %w", err)
	}
	defer rows.Close()

	ratings := []int{}
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, fmt.Errorf("scan rating failed: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return ratings, nil
}

func (r *postgresRepository) Create(ctx context.Context, rv *model.Review) error {
	query := `
		INSERT INTO reviews (
			id, whisky_id, user_id, username, rating, title, comment,
			nose, palate, finish, value, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`

	_, err := r.pool.Exec(ctx, query,
		rv.ID, rv.WhiskyID, rv.UserID, rv.Username, rv.Rating, rv.Title,
		rv.Comment, rv.Nose, rv.Palate, rv.Finish, rv.Value, rv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, patch model.UpdateReviewRequest) (*model.Review, error) {
	sets := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Username != nil {
		addSet("username", *patch.Username)
	}
	if patch.Rating != nil {
		addSet("rating", *patch.Rating)
	}
	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Comment != nil {
		addSet("comment", *patch.Comment)
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
	if patch.Value != nil {
		addSet("value", *patch.Value)
	}

	if len(sets) == 0 {
		// Nothing to change; an empty patch still reads the current row so
		// callers get NotFound semantics.
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`
		UPDATE reviews
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, utils.JoinWithComma(sets), argIndex, reviewColumns)
	args = append(args, id)

	rv, err := scanReview(r.pool.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, model.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return rv, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}
