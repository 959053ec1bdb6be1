package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"awareness-hub-service/internal/app"
	"awareness-hub-service/internal/config"
	"awareness-hub-service/internal/content"
	"awareness-hub-service/internal/infra/blob"
	"awareness-hub-service/internal/infra/memory"
	pgstore "awareness-hub-service/internal/infra/postgres"
	redisstore "awareness-hub-service/internal/infra/redis"
	transport "awareness-hub-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the awareness hub server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}
	if cfg.Admin.JWTSecret == "" {
		return fmt.Errorf("admin jwt secret not configured")
	}

	var progress app.ProgressStore = memory.NewProgressStore()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		progress = redisstore.NewProgressStore(client)
	}

	var stories app.StoryCollection = memory.NewStoryCollection()
	var podcasts app.PodcastCollection = memory.NewPodcastCollection()
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		stories = pgstore.NewStoryCollection(pool)
		podcasts = pgstore.NewPodcastCollection(pool)
	}

	blobDir := cfg.Blob.Dir
	if blobDir == "" {
		blobDir = "data/media"
	}
	blobs, err := blob.NewFSStore(blobDir)
	if err != nil {
		return err
	}

	wall := app.NewWall()
	wallTTL := config.TTLDuration(cfg.Wall.TTL, 30*time.Second)
	gameService := app.NewGameService(content.Quizzes(), progress, memory.NewAttemptRegistry())
	storyService := app.NewStoryService(stories, content.SeedStories(time.Now()), wall, wallTTL)
	podcastService := app.NewPodcastService(podcasts, blobs)

	auth := transport.NewAdminAuth(cfg.Admin.JWTSecret)
	handler := transport.NewHandler(gameService, storyService, podcastService, auth, blobs.Root())
	wallHandler := transport.NewWallHandler(storyService, wall)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler.Routes(wallHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting awareness hub on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
