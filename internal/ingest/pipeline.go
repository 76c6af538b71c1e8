// Package ingest drives the batch catalog build: page through each
// configured channel's uploads, join listing rows with per-video statistics,
// classify titles, and persist with insert-if-absent semantics.
package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rushhirosan/soccer-practice-search/internal/classify"
	"github.com/rushhirosan/soccer-practice-search/internal/model"
	"github.com/rushhirosan/soccer-practice-search/internal/normalize"
	"github.com/rushhirosan/soccer-practice-search/internal/repository"
	"github.com/rushhirosan/soccer-practice-search/internal/youtube"
)

// Fetcher is the slice of the YouTube client the pipeline consumes.
type Fetcher interface {
	SearchPage(ctx context.Context, channelID, pageToken string) (*youtube.Page, error)
	VideoDetails(ctx context.Context, videoIDs []string) ([]youtube.VideoDetail, error)
	ChannelTitle(ctx context.Context, channelID string) (string, error)
}

type Pipeline struct {
	fetcher   Fetcher
	channels  *repository.ChannelRepo
	videos    *repository.VideoRepo
	facets    *repository.CategoryRepo
	pageDelay time.Duration
}

func NewPipeline(fetcher Fetcher, channels *repository.ChannelRepo, videos *repository.VideoRepo, facets *repository.CategoryRepo, pageDelay time.Duration) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		channels:  channels,
		videos:    videos,
		facets:    facets,
		pageDelay: pageDelay,
	}
}

// Run ingests every configured channel sequentially. channelIDs and
// channelLinks are matched positionally. A channel whose branding lookup
// fails aborts the run; per-page fetch failures inside a channel only end
// that channel's pagination early.
func (p *Pipeline) Run(ctx context.Context, channelIDs, channelLinks []string) error {
	start := time.Now()

	for i, cid := range channelIDs {
		name, err := p.fetcher.ChannelTitle(ctx, cid)
		if err != nil {
			return fmt.Errorf("channel %s: branding lookup: %w", cid, err)
		}
		if name == "N/A" {
			return fmt.Errorf("channel %s: no branding title", cid)
		}

		link := ""
		if i < len(channelLinks) {
			link = channelLinks[i]
		}

		// Channel must be registered before any classification referencing
		// its surrogate key is written.
		channelKey, err := p.channels.Upsert(ctx, cid, name, link)
		if err != nil {
			return fmt.Errorf("channel %s: register: %w", cid, err)
		}

		// Storage failures roll back their own transaction inside the repo;
		// here they only end this channel, not the whole run.
		videos := p.CollectChannel(ctx, cid)
		if err := p.videos.InsertAll(ctx, videos, channelKey); err != nil {
			log.Printf("ingest: channel %s: store contents failed: %v", cid, err)
			continue
		}

		classifications := Classify(videos, channelKey)
		if err := p.facets.InsertAll(ctx, classifications); err != nil {
			log.Printf("ingest: channel %s: store classifications failed: %v", cid, err)
			continue
		}

		log.Printf("ingest: channel %s (%s) done — %d videos", cid, name, len(videos))
	}

	log.Printf("ingest: run complete — %d channels (%s)", len(channelIDs), time.Since(start).Round(time.Millisecond))
	return nil
}

// CollectChannel pages through a channel's uploads, joining each page's
// listing rows with a single batched statistics call. A page fetch failure
// logs and ends pagination early; whatever accumulated so far is returned.
func (p *Pipeline) CollectChannel(ctx context.Context, channelID string) []model.VideoData {
	var collected []model.VideoData
	pageToken := ""

	for {
		page, err := p.fetcher.SearchPage(ctx, channelID, pageToken)
		if err != nil {
			log.Printf("ingest: channel %s: page fetch failed, stopping: %v", channelID, err)
			break
		}
		if len(page.Items) == 0 && page.NextPageToken == "" {
			break
		}

		ids := make([]string, 0, len(page.Items))
		for _, item := range page.Items {
			ids = append(ids, item.VideoID)
		}

		details, err := p.fetcher.VideoDetails(ctx, ids)
		if err != nil {
			// Statistics are best-effort; the listing rows still count.
			log.Printf("ingest: channel %s: details fetch failed: %v", channelID, err)
			details = nil
		}

		collected = append(collected, joinPage(page.Items, details)...)

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}

		// Courtesy delay between pages for the upstream rate limit.
		select {
		case <-time.After(p.pageDelay):
		case <-ctx.Done():
			log.Printf("ingest: channel %s: cancelled", channelID)
			return collected
		}
	}

	log.Printf("ingest: channel %s: collected %d videos", channelID, len(collected))
	return collected
}

// joinPage merges listing items with their statistics by video id. Missing
// detail entries default every numeric field to the sentinel.
func joinPage(items []youtube.VideoItem, details []youtube.VideoDetail) []model.VideoData {
	byID := make(map[string]youtube.VideoDetail, len(details))
	for _, d := range details {
		byID[d.VideoID] = d
	}

	out := make([]model.VideoData, 0, len(items))
	for _, item := range items {
		data := model.VideoData{
			ID:         item.VideoID,
			Title:      item.Title,
			UploadDate: item.PublishedAt,
			URL:        "https://www.youtube.com/watch?v=" + item.VideoID,
			ViewCount:  model.CountSentinel,
			LikeCount:  model.CountSentinel,
			Duration:   normalize.DurationSentinel,
		}
		if d, ok := byID[item.VideoID]; ok {
			if d.ViewCount != "" {
				data.ViewCount = d.ViewCount
			}
			if d.LikeCount != "" {
				data.LikeCount = d.LikeCount
			}
			data.Duration = normalize.Duration(d.Duration)
		}
		out = append(out, data)
	}
	return out
}

// Classify derives the facet row for each video from its title.
func Classify(videos []model.VideoData, channelKey int) []model.Classification {
	out := make([]model.Classification, 0, len(videos))
	for _, v := range videos {
		out = append(out, model.Classification{
			ID:                   v.ID,
			CategoryTitle:        classify.Category(v.Title),
			Players:              classify.Players(v.Title),
			Level:                classify.Level(v.Title),
			ChannelBrandCategory: channelKey,
		})
	}
	return out
}

// Reclassify re-derives every stored classification from the current rules
// and updates the facet rows in place. Insert-if-absent ingestion never
// refreshes old rows, so this is the explicit path for rule changes.
func (p *Pipeline) Reclassify(ctx context.Context) (int, error) {
	rows, err := p.videos.AllTitles(ctx)
	if err != nil {
		return 0, fmt.Errorf("reclassify: load titles: %w", err)
	}

	updated := 0
	for _, row := range rows {
		cls := model.Classification{
			ID:            row.ID,
			CategoryTitle: classify.Category(row.Title),
			Players:       classify.Players(row.Title),
			Level:         classify.Level(row.Title),
		}
		if err := p.facets.UpdateLabels(ctx, cls); err != nil {
			log.Printf("ingest: reclassify %s failed: %v", row.ID, err)
			continue
		}
		updated++
	}

	log.Printf("ingest: reclassify complete — %d rows updated", updated)
	return updated, nil
}
