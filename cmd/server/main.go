package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/rushhirosan/soccer-practice-search/internal/config"
	"github.com/rushhirosan/soccer-practice-search/internal/db"
	"github.com/rushhirosan/soccer-practice-search/internal/handler"
	"github.com/rushhirosan/soccer-practice-search/internal/middleware"
	"github.com/rushhirosan/soccer-practice-search/internal/repository"
	"github.com/rushhirosan/soccer-practice-search/internal/router"
	"github.com/rushhirosan/soccer-practice-search/internal/search"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "soccer-practice-search")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.PoolMinConns, cfg.PoolMaxConns)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	handler.InitMetrics(pool)

	videoRepo := repository.NewVideoRepo(pool)
	channelRepo := repository.NewChannelRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)
	feedbackRepo := repository.NewFeedbackRepo(pool)

	engine := search.NewEngine(videoRepo, categoryRepo, channelRepo)

	h := &router.Handlers{
		Search:   handler.NewSearchHandler(engine),
		Meta:     handler.NewMetaHandler(categoryRepo, channelRepo),
		Feedback: handler.NewFeedbackHandler(feedbackRepo),
		Health:   handler.NewHealthHandler(pool),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Soccer Practice Search",
		ServerHeader: "soccer-practice-search",
	})

	router.Setup(app, h, cfg.CORSOrigins, cfg.StaticDir)

	log.Printf("soccer-practice-search backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
