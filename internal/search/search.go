// Package search implements the faceted catalog search: mode selection
// between a direct title query and the two-phase facet protocol, sort/
// pagination handling, and result shaping for display.
package search

import (
	"context"
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/rushhirosan/soccer-practice-search/internal/model"
	"github.com/rushhirosan/soccer-practice-search/internal/normalize"
	"github.com/rushhirosan/soccer-practice-search/internal/repository"
)

const (
	DefaultSort   = "upload_date"
	DefaultLimit  = 10
	DefaultOffset = 0
)

// sortColumns is the allow-list of sortable contents columns. The column
// name is the only caller-influenced fragment spliced into SQL, so it is
// checked here before any query is built.
var sortColumns = map[string]bool{
	"upload_date": true,
	"view_count":  true,
	"like_count":  true,
	"title":       true,
	"duration":    true,
	"id":          true,
}

// Params are the raw search inputs as they arrive from the query string.
type Params struct {
	Query    string
	Category string
	Players  string
	Level    string
	Channel  string
	Sort     string
	Limit    int
	Offset   int
}

// hasFacets reports whether any facet filter is present.
func (p Params) hasFacets() bool {
	return p.Category != "" || p.Players != "" || p.Level != "" || p.Channel != ""
}

// SinglePhase reports whether the request takes the direct title-query path:
// free text present and no facet set. Everything else goes through the
// two-phase facet protocol.
func (p Params) SinglePhase() bool {
	return p.Query != "" && !p.hasFacets()
}

// NormalizeSort maps the caller's sort column onto the allow-list, falling
// back to upload_date for anything unknown.
func NormalizeSort(sort string) string {
	if sortColumns[sort] {
		return sort
	}
	return DefaultSort
}

// videoStore is the slice of the video repository the engine consumes.
type videoStore interface {
	SearchByTitle(ctx context.Context, q, sortColumn string, limit, offset int) ([]model.VideoRecord, error)
	CountByTitle(ctx context.Context, q string) (int, error)
	FindByIDs(ctx context.Context, ids []string, q, sortColumn string, limit, offset int) ([]model.VideoRecord, error)
	CountByIDs(ctx context.Context, ids []string, q string) (int, error)
}

// facetIndex resolves a facet predicate to the matching video id set.
type facetIndex interface {
	MatchingIDs(ctx context.Context, f repository.FacetFilter) ([]string, error)
}

// channelDirectory resolves channel surrogate keys to display names.
type channelDirectory interface {
	NameByID(ctx context.Context, id int) (string, error)
}

type Engine struct {
	videos   videoStore
	facets   facetIndex
	channels channelDirectory
}

func NewEngine(videos videoStore, facets facetIndex, channels channelDirectory) *Engine {
	return &Engine{videos: videos, facets: facets, channels: channels}
}

// Search resolves one search request.
func (e *Engine) Search(ctx context.Context, p Params) (*model.SearchResponse, error) {
	sortColumn := NormalizeSort(p.Sort)
	// Zero is a legitimate limit and selects no rows; only a negative value
	// falls back to the default.
	if p.Limit < 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}

	var (
		records []model.VideoRecord
		total   int
		err     error
	)

	if p.SinglePhase() {
		// Direct path matches case-insensitively on an NFKC-folded query.
		q := norm.NFKC.String(strings.TrimSpace(p.Query))
		total, err = e.videos.CountByTitle(ctx, q)
		if err != nil {
			return nil, err
		}
		records, err = e.videos.SearchByTitle(ctx, q, sortColumn, p.Limit, p.Offset)
		if err != nil {
			return nil, err
		}
	} else {
		var ids []string
		ids, err = e.facets.MatchingIDs(ctx, e.facetFilter(p))
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			// Nothing matched the facets; never issue a detail query over
			// an empty id set. The running display count still carries the
			// offset: zero rows fetched on top of what was already shown.
			return &model.SearchResponse{
				Activities:          []model.VideoView{},
				CurrentDisplayCount: p.Offset,
			}, nil
		}

		// The title match here is case-sensitive, unlike the direct path.
		// The original behaves this way and the difference is preserved.
		total, err = e.videos.CountByIDs(ctx, ids, p.Query)
		if err != nil {
			return nil, err
		}
		records, err = e.videos.FindByIDs(ctx, ids, p.Query, sortColumn, p.Limit, p.Offset)
		if err != nil {
			return nil, err
		}
	}

	// The running display count uses the fetched row count; shaping may
	// still drop records with unparsable dates.
	resp := &model.SearchResponse{
		Total:               total,
		CurrentDisplayCount: len(records) + p.Offset,
	}
	resp.Activities = e.shape(ctx, records)
	return resp, nil
}

// facetFilter maps request params onto the facet predicate. A channel value
// that is not a surrogate key number is ignored, with a log line.
func (e *Engine) facetFilter(p Params) repository.FacetFilter {
	f := repository.FacetFilter{
		Category: p.Category,
		Players:  p.Players,
		Level:    p.Level,
	}
	if p.Channel != "" {
		n, err := strconv.Atoi(p.Channel)
		if err != nil || n <= 0 {
			log.Printf("search: ignoring non-numeric channel filter %q", p.Channel)
		} else {
			f.Channel = n
		}
	}
	return f
}

// shape converts stored records into their display form: localized date,
// embed URL, resolved channel name. Records whose stored date matches no
// accepted layout are dropped.
func (e *Engine) shape(ctx context.Context, records []model.VideoRecord) []model.VideoView {
	views := make([]model.VideoView, 0, len(records))
	for _, rec := range records {
		date, err := normalize.UploadDate(rec.UploadDate)
		if err != nil {
			log.Printf("search: dropping %s: %v", rec.ID, err)
			continue
		}

		name, err := e.channels.NameByID(ctx, rec.ChannelCategory)
		if err != nil {
			log.Printf("search: channel name lookup for %s: %v", rec.ID, err)
		}

		views = append(views, model.VideoView{
			ID:              rec.ID,
			Title:           rec.Title,
			UploadDate:      date,
			VideoURL:        normalize.EmbedURL(rec.VideoURL),
			ViewCount:       rec.ViewCount,
			LikeCount:       rec.LikeCount,
			Duration:        rec.Duration,
			ChannelCategory: name,
		})
	}
	return views
}
