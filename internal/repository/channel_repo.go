package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushhirosan/soccer-practice-search/internal/model"
)

type ChannelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepo(pool *pgxpool.Pool) *ChannelRepo {
	return &ChannelRepo{pool: pool}
}

// Upsert registers a channel and returns its surrogate key. A conflict on
// the external channel id is a no-op, not an update; the existing row's key
// is returned.
func (r *ChannelRepo) Upsert(ctx context.Context, cid, cname, clink string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO cid (cid, cname, clink)
		VALUES ($1, $2, $3)
		ON CONFLICT (cid) DO NOTHING
		RETURNING id`,
		cid, cname, clink).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	// Conflict path: DO NOTHING returns no row, fetch the existing key.
	err = r.pool.QueryRow(ctx, `SELECT id FROM cid WHERE cid = $1`, cid).Scan(&id)
	return id, err
}

// List returns every registered channel for the channel picker.
func (r *ChannelRepo) List(ctx context.Context) ([]model.ChannelResponse, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, cname, clink FROM cid ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []model.ChannelResponse
	for rows.Next() {
		var ch model.ChannelResponse
		if err := rows.Scan(&ch.ID, &ch.ChannelName, &ch.ChannelLink); err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

// NameByID resolves a surrogate key to the channel display name. Unknown
// keys return an empty string rather than an error.
func (r *ChannelRepo) NameByID(ctx context.Context, id int) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT cname FROM cid WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return name, nil
}
