package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushhirosan/soccer-practice-search/internal/model"
)

type FeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

// Insert appends a feedback entry. created_at is assigned by the database.
func (r *FeedbackRepo) Insert(ctx context.Context, f model.FeedbackRequest) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO feedback (name, email, category, message)
		VALUES ($1, $2, $3, $4)`,
		f.Name, f.Email, f.Category, f.Message)
	return err
}
