package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushhirosan/soccer-practice-search/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

const videoColumns = `id, title, upload_date, video_url, view_count, like_count, duration, channel_category`

// InsertAll writes a batch of collected videos with insert-if-absent
// semantics keyed by video id. Counts go through coerceCount so the
// sentinel and anything non-numeric land as NULL. Any statement error rolls
// the whole batch back.
func (r *VideoRepo) InsertAll(ctx context.Context, videos []model.VideoData, channelKey int) error {
	if len(videos) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, v := range videos {
		_, err := tx.Exec(ctx, `
			INSERT INTO contents (id, title, upload_date, video_url, view_count, like_count, duration, channel_category)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			v.ID, v.Title, v.UploadDate, v.URL,
			coerceCount(v.ID, "view_count", v.ViewCount),
			coerceCount(v.ID, "like_count", v.LikeCount),
			v.Duration, channelKey)
		if err != nil {
			return fmt.Errorf("insert contents %s: %w", v.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// coerceCount turns an upstream count string into a nullable integer. The
// sentinel maps silently to NULL; anything else non-numeric is logged and
// also treated as absent.
func coerceCount(videoID, field, raw string) *int64 {
	if raw == "" || raw == model.CountSentinel {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("contents: invalid %s for %s: %q", field, videoID, raw)
		return nil
	}
	return &n
}

// SearchByTitle is the single-phase path: case-insensitive substring match
// on title, ordered by the given allow-listed column descending.
func (r *VideoRepo) SearchByTitle(ctx context.Context, q, sortColumn string, limit, offset int) ([]model.VideoRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM contents
		WHERE title ILIKE $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3`, videoColumns, sortColumn)

	rows, err := r.pool.Query(ctx, query, "%"+q+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVideos(rows)
}

// CountByTitle is the count query paired with SearchByTitle.
func (r *VideoRepo) CountByTitle(ctx context.Context, q string) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM contents
		WHERE title ILIKE $1`, "%"+q+"%").Scan(&total)
	return total, err
}

// FindByIDs is phase two of the faceted path: details restricted to the
// facet-matched id set, optionally narrowed by a case-sensitive title
// substring. Callers must not pass an empty id set.
func (r *VideoRepo) FindByIDs(ctx context.Context, ids []string, q, sortColumn string, limit, offset int) ([]model.VideoRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM contents WHERE id = ANY($1)`, videoColumns)
	args := []any{ids}

	if q != "" {
		query += fmt.Sprintf(" AND title LIKE $%d", len(args)+1)
		args = append(args, "%"+q+"%")
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d OFFSET $%d", sortColumn, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVideos(rows)
}

// CountByIDs is the count query paired with FindByIDs.
func (r *VideoRepo) CountByIDs(ctx context.Context, ids []string, q string) (int, error) {
	query := `SELECT count(*) FROM contents WHERE id = ANY($1)`
	args := []any{ids}

	if q != "" {
		query += " AND title LIKE $2"
		args = append(args, "%"+q+"%")
	}

	var total int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

// TitleRow pairs a video id with its stored title, for reclassification.
type TitleRow struct {
	ID    string
	Title string
}

// AllTitles returns every stored video's id and title.
func (r *VideoRepo) AllTitles(ctx context.Context) ([]TitleRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM contents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TitleRow
	for rows.Next() {
		var row TitleRow
		if err := rows.Scan(&row.ID, &row.Title); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanVideos(rows pgx.Rows) ([]model.VideoRecord, error) {
	var videos []model.VideoRecord
	for rows.Next() {
		var v model.VideoRecord
		err := rows.Scan(&v.ID, &v.Title, &v.UploadDate, &v.VideoURL,
			&v.ViewCount, &v.LikeCount, &v.Duration, &v.ChannelCategory)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}
