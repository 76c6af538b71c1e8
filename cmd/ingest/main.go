// Command ingest builds the video catalog: it registers the configured
// channels, pages through their uploads, classifies every title, and stores
// the results. Run it again at any time; existing rows are never rewritten.
//
//	ingest                    ingest all configured channels
//	ingest -reclassify        re-derive facet labels from stored titles
//	ingest -resolve @handle   print the channel id for a handle and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rushhirosan/soccer-practice-search/internal/config"
	"github.com/rushhirosan/soccer-practice-search/internal/db"
	"github.com/rushhirosan/soccer-practice-search/internal/ingest"
	"github.com/rushhirosan/soccer-practice-search/internal/repository"
	"github.com/rushhirosan/soccer-practice-search/internal/youtube"
)

func main() {
	reclassify := flag.Bool("reclassify", false, "re-derive classifications from stored titles and exit")
	resolve := flag.String("resolve", "", "resolve a channel handle to its channel id and exit")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	if *resolve != "" {
		client := youtube.NewClient(mustAPIKey(cfg))
		id, err := client.ResolveChannelID(ctx, *resolve)
		if err != nil {
			log.Fatalf("resolve %s: %v", *resolve, err)
		}
		if id == "" {
			log.Fatalf("no channel found for %s", *resolve)
		}
		fmt.Println(id)
		return
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.PoolMinConns, cfg.PoolMaxConns)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	channelRepo := repository.NewChannelRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)

	if *reclassify {
		pipeline := ingest.NewPipeline(nil, channelRepo, videoRepo, categoryRepo, cfg.PageDelay)
		updated, err := pipeline.Reclassify(ctx)
		if err != nil {
			log.Fatalf("reclassify: %v", err)
		}
		log.Printf("reclassified %d videos", updated)
		return
	}

	if len(cfg.ChannelIDs) == 0 {
		log.Fatal("CHANNEL_IDS is not set")
	}

	client := youtube.NewClient(mustAPIKey(cfg))
	pipeline := ingest.NewPipeline(client, channelRepo, videoRepo, categoryRepo, cfg.PageDelay)

	if err := pipeline.Run(ctx, cfg.ChannelIDs, cfg.ChannelLinks); err != nil {
		log.Fatalf("ingest: %v", err)
	}
}

func mustAPIKey(cfg *config.Config) string {
	if cfg.YouTubeAPIKey == "" {
		log.Println("YOUTUBE_API_KEY is not set")
		os.Exit(1)
	}
	return cfg.YouTubeAPIKey
}
