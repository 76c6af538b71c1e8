package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushhirosan/soccer-practice-search/internal/model"
)

type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// FacetFilter is the equality predicate over the facet table. Zero-valued
// fields impose no constraint. Channel is the cid surrogate key; zero means
// unfiltered.
type FacetFilter struct {
	Category string
	Players  string
	Level    string
	Channel  int
}

// Empty reports whether no facet constrains the predicate.
func (f FacetFilter) Empty() bool {
	return f.Category == "" && f.Players == "" && f.Level == "" && f.Channel == 0
}

// buildFacetPredicate compiles the filter into a parameterized WHERE clause.
// Values never reach the SQL text; each present facet adds one placeholder.
func buildFacetPredicate(f FacetFilter) (string, []any) {
	clause := "WHERE 1=1"
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		clause += fmt.Sprintf(" AND %s = $%d", column, len(args))
	}

	if f.Category != "" {
		add("category_title", f.Category)
	}
	if f.Players != "" {
		add("players", f.Players)
	}
	if f.Level != "" {
		add("level", f.Level)
	}
	if f.Channel != 0 {
		add("channel_brand_category", f.Channel)
	}
	return clause, args
}

// MatchingIDs is phase one of the faceted search: the set of video ids
// whose classification satisfies every present facet.
func (r *CategoryRepo) MatchingIDs(ctx context.Context, f FacetFilter) ([]string, error) {
	clause, args := buildFacetPredicate(f)

	rows, err := r.pool.Query(ctx, "SELECT id FROM category "+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// InsertAll writes classifications with insert-if-absent semantics keyed by
// video id. An existing row is never overwritten, so re-ingestion leaves
// earlier classifications in place (Reclassify is the explicit refresh).
func (r *CategoryRepo) InsertAll(ctx context.Context, classifications []model.Classification) error {
	if len(classifications) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, c := range classifications {
		_, err := tx.Exec(ctx, `
			INSERT INTO category (id, category_title, players, level, channel_brand_category)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.CategoryTitle, c.Players, c.Level, c.ChannelBrandCategory)
		if err != nil {
			return fmt.Errorf("insert category %s: %w", c.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// UpdateLabels rewrites the derived labels of an existing facet row, leaving
// the channel reference untouched.
func (r *CategoryRepo) UpdateLabels(ctx context.Context, c model.Classification) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE category
		SET category_title = $1, players = $2, level = $3
		WHERE id = $4`,
		c.CategoryTitle, c.Players, c.Level, c.ID)
	return err
}

// uniqueValueColumns is the allow-list for UniqueValues; anything else is
// rejected before query construction.
var uniqueValueColumns = map[string]bool{
	"category_title": true,
	"players":        true,
}

// ErrInvalidColumn reports a column outside the unique-values allow-list.
var ErrInvalidColumn = fmt.Errorf("invalid column")

// UniqueValues returns the distinct non-empty values of an allow-listed
// facet column in ascending order.
func (r *CategoryRepo) UniqueValues(ctx context.Context, column string) ([]string, error) {
	if !uniqueValueColumns[column] {
		return nil, ErrInvalidColumn
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT %[1]s FROM category
		WHERE %[1]s IS NOT NULL AND %[1]s != ''
		ORDER BY %[1]s ASC`, column)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Levels returns the distinct level labels present in the catalog.
func (r *CategoryRepo) Levels(ctx context.Context) ([]model.LevelResponse, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT level FROM category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []model.LevelResponse
	for rows.Next() {
		var l model.LevelResponse
		if err := rows.Scan(&l.Level); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}
